// Package promptpay encodes merchant-presented PromptPay QR payloads
// (EMVCo TLV format). Encoding is deterministic and byte-exact: the
// payload is what a scanning banking app parses and checksums, so any
// drift breaks real payments.
package promptpay

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// providerGUID identifies the PromptPay application in the merchant
	// account information template.
	providerGUID = "A000000677010111"

	payloadFormatIndicator = "000201"
	// dynamic QR: one payload per transaction
	pointOfInitiation = "010212"
	// ISO 4217 numeric code for THB
	currencyField = "5303764"
	checksumTag   = "6304"
)

// NormalizeID strips hyphens and spaces from a PromptPay identifier and
// internationalizes local mobile numbers: a 10-character identifier with
// the national trunk prefix 0 has the leading 0 replaced by 0066.
func NormalizeID(id string) string {
	pid := strings.ReplaceAll(id, "-", "")
	pid = strings.ReplaceAll(pid, " ", "")
	if strings.HasPrefix(pid, "0") && len(pid) == 10 {
		pid = "0066" + pid[1:]
	}
	return pid
}

// BuildPayload encodes the textual QR payload for the given receiving
// account, amount and order reference. A zero or negative amount omits
// the amount field; an empty ref omits the additional-data field.
// Identical inputs always produce an identical payload.
func BuildPayload(accountID string, amount decimal.Decimal, ref string) string {
	pid := NormalizeID(accountID)

	// The account identifier is embedded as bare length+value after the
	// provider GUID sub-field; scanning apps expect exactly this layout.
	merchantInfo := fmt.Sprintf("0016%s%02d%s", providerGUID, len(pid), pid)

	var b strings.Builder
	b.WriteString(payloadFormatIndicator)
	b.WriteString(pointOfInitiation)
	b.WriteString(fmt.Sprintf("29%02d%s", len(merchantInfo), merchantInfo))
	b.WriteString(currencyField)

	if amount.IsPositive() {
		amountStr := amount.StringFixed(2)
		b.WriteString(fmt.Sprintf("54%02d%s", len(amountStr), amountStr))
	}

	if ref != "" {
		refField := fmt.Sprintf("05%02d%s", len(ref), ref)
		b.WriteString(fmt.Sprintf("62%02d%s", len(refField), refField))
	}

	b.WriteString(checksumTag)
	prefix := b.String()
	return prefix + fmt.Sprintf("%04X", crc16(prefix))
}
