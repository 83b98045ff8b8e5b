package utils

import (
	"fmt"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Canonical QR payload: "location:<id>:<name>". The id segment is
// authoritative; the name segment is display-only and may contain colons.
const qrPrefix = "location:"

func EncodeLocationPayload(id uint, name string) string {
	return fmt.Sprintf("location:%d:%s", id, name)
}

// DecodeLocationPayload extracts the location id from a scanned payload.
// Returns false for anything that is not a well-formed location payload,
// including bare integers from older clients.
func DecodeLocationPayload(payload string) (uint, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(payload), qrPrefix)
	if !ok {
		return 0, false
	}
	idPart, _, _ := strings.Cut(rest, ":")
	id, err := strconv.ParseUint(idPart, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// LocationQRPNG renders the canonical payload as a PNG for printing at the
// checkpoint.
func LocationQRPNG(id uint, name string, size int) ([]byte, error) {
	return qrcode.Encode(EncodeLocationPayload(id, name), qrcode.Medium, size)
}
