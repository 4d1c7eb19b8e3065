package http

import "frostwatch-srv/internal/subscription"

type subscribeReq struct {
	Email   string `json:"email"`
	ZipCode string `json:"zipCode"`
}

func (r subscribeReq) toInput() subscription.SubscribeInput {
	return subscription.SubscribeInput{
		Email:   r.Email,
		ZipCode: r.ZipCode,
	}
}

type subscribeResp struct {
	Message string `json:"message"`
	IsNew   bool   `json:"isNew"`
}

// unsubscribeReq carries either a raw email or a signed token from an email
// footer link. Token wins when both are present.
type unsubscribeReq struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

func (r unsubscribeReq) toInput() subscription.UnsubscribeInput {
	return subscription.UnsubscribeInput{
		Email: r.Email,
		Token: r.Token,
	}
}

type unsubscribeResp struct {
	Message string `json:"message"`
}

type sendAlertsResp struct {
	Message string `json:"message"`
	Total   int    `json:"total"`
	Success int    `json:"success"`
	Failed  int    `json:"failed"`
}
