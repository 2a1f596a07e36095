// Package pix generates PIX "copia e cola" payment codes and their QR image
// form from merchant and amount data, following the EMV BR Code layout
// published by the Banco Central do Brasil.
package pix

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	pixGUI        = "br.gov.bcb.pix"
	currencyBRL   = "986"
	countryBR     = "BR"
	maxNameLen    = 25
	maxCityLen    = 15
	maxTxIDLen    = 25
	maxMessageLen = 40
	maxFieldLen   = 99
	qrImageSize   = 256
)

// Params are the merchant and transaction inputs for one charge.
type Params struct {
	Key           string
	ReceiverName  string
	City          string
	TransactionID string
	Message       string
	Amount        decimal.Decimal
}

// Charge is the generated payment artifact: the copy-paste payload and the
// same payload encoded as a PNG QR code, as a data URL ready for an <img>.
type Charge struct {
	Payload string
	Image   string
}

// Generator builds charges locally; no network call is involved.
type Generator struct {
	logger *zap.Logger
}

func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate builds the EMV payload and its QR image for the given params.
func (g *Generator) Generate(ctx context.Context, p Params) (Charge, error) {
	if err := ctx.Err(); err != nil {
		return Charge{}, err
	}
	if p.Key == "" {
		return Charge{}, fmt.Errorf("pix key is required")
	}
	if p.Amount.IsNegative() {
		return Charge{}, fmt.Errorf("amount must not be negative")
	}

	payload, err := buildPayload(p)
	if err != nil {
		return Charge{}, err
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		g.logger.Error("Failed to encode PIX QR code", zap.Error(err))
		return Charge{}, fmt.Errorf("encode qr code: %w", err)
	}

	return Charge{
		Payload: payload,
		Image:   "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}

func buildPayload(p Params) (string, error) {
	merchantAccount := emv("00", pixGUI) + emv("01", p.Key)
	// The message sub-field is optional; drop it before overflowing the
	// enclosing field rather than emitting a broken length marker.
	if msg := field(p.Message, maxMessageLen); msg != "" && len(merchantAccount)+4+len(msg) <= maxFieldLen {
		merchantAccount += emv("02", msg)
	}
	if len(merchantAccount) > maxFieldLen {
		return "", fmt.Errorf("pix key %q does not fit the merchant account field", p.Key)
	}

	txid := field(p.TransactionID, maxTxIDLen)
	if txid == "" {
		txid = "***"
	}

	var b strings.Builder
	b.WriteString(emv("00", "01")) // payload format indicator
	b.WriteString(emv("26", merchantAccount))
	b.WriteString(emv("52", "0000")) // merchant category code
	b.WriteString(emv("53", currencyBRL))
	b.WriteString(emv("54", p.Amount.StringFixed(2)))
	b.WriteString(emv("58", countryBR))
	b.WriteString(emv("59", field(p.ReceiverName, maxNameLen)))
	b.WriteString(emv("60", field(p.City, maxCityLen)))
	b.WriteString(emv("62", emv("05", txid)))

	// CRC field: the checksum covers everything up to and including its own
	// id and length marker.
	b.WriteString("6304")
	payload := b.String()
	return payload + fmt.Sprintf("%04X", crc16(payload)), nil
}

// field sanitizes and bounds one free-text value. Trimming runs again after
// the cut because truncation can expose a trailing space.
func field(s string, max int) string {
	return strings.TrimSpace(truncate(sanitize(s), max))
}

// emv renders one TLV field: two-digit id, two-digit length, value.
func emv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// sanitize folds text into the uppercase ASCII subset banks accept in BR
// Code fields: diacritics stripped, anything else non-printable dropped.
func sanitize(s string) string {
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(folded) {
		if r >= 0x20 && r <= 0x7e {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// crc16 implements CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF), the
// checksum mandated for BR Code payloads.
func crc16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
