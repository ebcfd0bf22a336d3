package entity

// SignedPayload carries the fields the client posts to the gateway checkout form.
type SignedPayload struct {
	MerchantID      string `json:"MerchantID"`
	TradeInfo       string `json:"TradeInfo"`
	TradeSha        string `json:"TradeSha"`
	Version         string `json:"Version"`
	MerchantOrderNo string `json:"MerchantOrderNo"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
