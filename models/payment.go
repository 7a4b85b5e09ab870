package models

// PaymentSlip holds the uploaded bank slip inline on the payment record.
type PaymentSlip struct {
	Data        []byte `bson:"data,omitempty" json:"data,omitempty"`
	ContentType string `bson:"contentType,omitempty" json:"contentType,omitempty"`
}

// Payment is a bank-transfer record submitted by a customer for a
// package purchase. No gateway is involved; confirmation is manual.
type Payment struct {
	ID        string      `bson:"id" json:"_id"`
	UserName  string      `bson:"userName" json:"userName"`
	AccountNo int64       `bson:"accountNo" json:"accountNo"`
	Bank      string      `bson:"bank" json:"bank"`
	Branch    string      `bson:"branch" json:"branch"`
	Package   string      `bson:"package" json:"package"`
	Amount    float64     `bson:"amount" json:"amount"`
	CnfStatus string      `bson:"cnfStatus" json:"cnfStatus"`
	Slip      PaymentSlip `bson:"slip,omitempty" json:"slip,omitempty"`
}
