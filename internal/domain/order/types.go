package order

import (
	"strings"
)

type Type string

const (
	TypeCourt    Type = "court"
	TypeRefund   Type = "refund"
	TypeTraining Type = "training"
	TypeProduct  Type = "product"
)

func (t Type) String() string {
	return string(t)
}

// Code is the single letter embedded in order numbers.
func (t Type) Code() string {
	if t == "" {
		return "X"
	}
	return strings.ToUpper(string(t)[:1])
}

type Status string

const (
	StatusPaid     Status = "paid"
	StatusRefunded Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

const (
	SourceAdmin      = "admin"
	SourceMemberSelf = "member_self"
	SourceAgent      = "agent"
	SourceRefund     = "refund"
)
