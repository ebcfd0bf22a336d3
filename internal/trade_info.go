package internal

import (
	"net/url"
	"strconv"
	"strings"

	"paygate/entity"
)

type tradeField struct {
	key   string
	value string
}

// tradeFields lists the trade info fields in the order the gateway expects them.
// A field with an empty value is left out.
func tradeFields(info entity.TradeInfo) []tradeField {
	return []tradeField{
		{"MerchantID", info.MerchantID},
		{"RespondType", info.RespondType},
		{"TimeStamp", nonZero(info.TimeStamp)},
		{"Version", info.Version},
		{"MerchantOrderNo", info.MerchantOrderNo},
		{"Amt", info.Amt},
		{"ItemDesc", info.ItemDesc},
		{"ReturnURL", info.ReturnURL},
		{"NotifyURL", info.NotifyURL},
		{"Email", info.Email},
		{"LoginType", nonZero(int64(info.LoginType))},
		{"CREDIT", nonZero(int64(info.Credit))},
		{"WEBATM", nonZero(int64(info.WebATM))},
		{"VACC", nonZero(int64(info.VACC))},
	}
}

func nonZero(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

// EncodeTradeInfo form-encodes the trade info in gateway field order.
func EncodeTradeInfo(info entity.TradeInfo) string {
	var sb strings.Builder
	for _, field := range tradeFields(info) {
		if field.value == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(formEscape(field.key))
		sb.WriteByte('=')
		sb.WriteString(formEscape(field.value))
	}
	return sb.String()
}

// formEscape applies the WHATWG urlencoded byte set: compared with
// url.QueryEscape, '*' stays literal and '~' is escaped.
func formEscape(s string) string {
	escaped := url.QueryEscape(s)
	if !strings.ContainsAny(escaped, "~%") {
		return escaped
	}
	return formReplacer.Replace(escaped)
}

var formReplacer = strings.NewReplacer("%2A", "*", "~", "%7E")
