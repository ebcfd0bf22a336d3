package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"paygate/entity"
)

func goldenTradeInfo() entity.TradeInfo {
	return entity.TradeInfo{
		MerchantID:      testMerchantID,
		RespondType:     "JSON",
		TimeStamp:       testTimeStamp,
		Version:         "2.0",
		MerchantOrderNo: "S1",
		Amt:             "100",
		ItemDesc:        "Test",
		ReturnURL:       "https://example.com/return",
		NotifyURL:       "https://example.com/notify",
		Email:           "a@b.com",
		LoginType:       0,
		Credit:          1,
		WebATM:          1,
		VACC:            1,
	}
}

const goldenTradeString = "MerchantID=MS12345678&RespondType=JSON&TimeStamp=1700000000&Version=2.0" +
	"&MerchantOrderNo=S1&Amt=100&ItemDesc=Test" +
	"&ReturnURL=https%3A%2F%2Fexample.com%2Freturn&NotifyURL=https%3A%2F%2Fexample.com%2Fnotify" +
	"&Email=a%40b.com&CREDIT=1&WEBATM=1&VACC=1"

func TestEncodeTradeInfo(t *testing.T) {
	assert.Equal(t, goldenTradeString, EncodeTradeInfo(goldenTradeInfo()))
}

func TestEncodeTradeInfo_FieldOrder(t *testing.T) {
	info := goldenTradeInfo()
	info.LoginType = 1
	encoded := EncodeTradeInfo(info)

	order := []string{"MerchantID", "RespondType", "TimeStamp", "Version", "MerchantOrderNo", "Amt",
		"ItemDesc", "ReturnURL", "NotifyURL", "Email", "LoginType", "CREDIT", "WEBATM", "VACC"}
	pairs := strings.Split(encoded, "&")
	if assert.Len(t, pairs, len(order)) {
		for i, pair := range pairs {
			assert.Equal(t, order[i], strings.SplitN(pair, "=", 2)[0])
		}
	}
}

func TestEncodeTradeInfo_OmitsEmptyFields(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(info *entity.TradeInfo)
		missing string
	}{
		{"zero login type", func(info *entity.TradeInfo) { info.LoginType = 0 }, "LoginType="},
		{"empty item desc", func(info *entity.TradeInfo) { info.ItemDesc = "" }, "ItemDesc="},
		{"empty notify url", func(info *entity.TradeInfo) { info.NotifyURL = "" }, "NotifyURL="},
		{"zero timestamp", func(info *entity.TradeInfo) { info.TimeStamp = 0 }, "TimeStamp="},
		{"credit disabled", func(info *entity.TradeInfo) { info.Credit = 0 }, "CREDIT="},
		{"vacc disabled", func(info *entity.TradeInfo) { info.VACC = 0 }, "VACC="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := goldenTradeInfo()
			tt.modify(&info)
			encoded := EncodeTradeInfo(info)
			assert.NotContains(t, encoded, tt.missing)
			assert.NotContains(t, encoded, "&&")
			assert.False(t, strings.HasPrefix(encoded, "&") || strings.HasSuffix(encoded, "&"))
		})
	}
}

func TestEncodeTradeInfo_LoginTypeSentWhenSet(t *testing.T) {
	info := goldenTradeInfo()
	info.LoginType = 1
	assert.Contains(t, EncodeTradeInfo(info), "&Email=a%40b.com&LoginType=1&CREDIT=1")
}

func TestEncodeTradeInfo_Empty(t *testing.T) {
	assert.Equal(t, "", EncodeTradeInfo(entity.TradeInfo{}))
}

func TestFormEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mock Interview Analysis", "Mock+Interview+Analysis"},
		{"user+tag@example.com", "user%2Btag%40example.com"},
		// reference output of URLSearchParams
		{"x y*~-._!'()&=/:;,?@#$%^+é中", "x+y*%7E-._%21%27%28%29%26%3D%2F%3A%3B%2C%3F%40%23%24%25%5E%2B%C3%A9%E4%B8%AD"},
		{"%2A", "%252A"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formEscape(tt.in))
		})
	}
}
