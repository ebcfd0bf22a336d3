package entity

// TradeInfo is the set of fields that is form-encoded and encrypted into the
// gateway's TradeInfo parameter. Zero values are omitted from the encoding.
type TradeInfo struct {
	MerchantID      string
	RespondType     string
	TimeStamp       int64
	Version         string
	MerchantOrderNo string
	Amt             string
	ItemDesc        string
	ReturnURL       string
	NotifyURL       string
	Email           string
	// LoginType 0 = no gateway member login required
	LoginType int
	// Payment method toggles, 1 = enabled
	Credit int
	WebATM int
	VACC   int
}
