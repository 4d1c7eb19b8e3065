package http

import (
	"github.com/gin-gonic/gin"

	"frostwatch-srv/internal/subscription"
	pkgErrors "frostwatch-srv/pkg/errors"
)

func (h *Handler) processSubscribeRequest(c *gin.Context) (subscription.SubscribeInput, error) {
	var req subscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.subscription.delivery.http.processSubscribeRequest: %v", err)
		return subscription.SubscribeInput{}, pkgErrors.NewValidationError(errCodeInvalidBody, "body", "invalid request body")
	}
	return req.toInput(), nil
}

func (h *Handler) processUnsubscribeRequest(c *gin.Context) (subscription.UnsubscribeInput, error) {
	var req unsubscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.subscription.delivery.http.processUnsubscribeRequest: %v", err)
		return subscription.UnsubscribeInput{}, pkgErrors.NewValidationError(errCodeInvalidBody, "body", "invalid request body")
	}
	if req.Email == "" && req.Token == "" {
		return subscription.UnsubscribeInput{}, pkgErrors.NewValidationError(errCodeMissingTarget, "email", "email or token is required")
	}
	return req.toInput(), nil
}
