package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"frostwatch-srv/pkg/response"
)

// Subscribe creates or reactivates a frost-alert subscription.
// @Summary Subscribe to frost alerts
// @Description Register an email address to receive frost/freeze alert digests for a ZIP code. Re-subscribing updates the ZIP and reactivates the subscription.
// @Tags Subscription
// @Accept json
// @Produce json
// @Param body body subscribeReq true "Subscription request"
// @Success 200 {object} subscribeResp "Existing subscription updated"
// @Success 201 {object} subscribeResp "New subscription created"
// @Failure 400 {object} response.ErrorResp "Invalid email or ZIP code"
// @Router /api/subscribe [POST]
func (h *Handler) Subscribe(c *gin.Context) {
	input, err := h.processSubscribeRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Subscribe(c.Request.Context(), input)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	resp := subscribeResp{
		Message: fmt.Sprintf("Subscribed %s to frost alerts for ZIP %s", out.Subscription.Email, out.Subscription.ZipCode),
		IsNew:   out.IsNew,
	}
	if out.IsNew {
		response.Created(c, resp)
		return
	}
	response.OK(c, resp)
}

// Unsubscribe deactivates a subscription by email or signed token.
// @Summary Unsubscribe from frost alerts
// @Tags Subscription
// @Accept json
// @Produce json
// @Param body body unsubscribeReq true "Unsubscribe request (email or token)"
// @Success 200 {object} unsubscribeResp
// @Failure 400 {object} response.ErrorResp "Invalid email or token"
// @Failure 404 {object} response.ErrorResp "Unknown email"
// @Router /api/unsubscribe [POST]
func (h *Handler) Unsubscribe(c *gin.Context) {
	input, err := h.processUnsubscribeRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Unsubscribe(c.Request.Context(), input); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, unsubscribeResp{Message: "Unsubscribed from frost alerts"})
}

// SendAlertsNow triggers one digest batch run synchronously.
// @Summary Run the alert digest now
// @Description Process every active subscription once: look up alerts, send emails, throttle between sends. Returns aggregate counts.
// @Tags Digest
// @Produce json
// @Success 200 {object} sendAlertsResp
// @Failure 500 {object} response.ErrorResp "Subscription list could not be fetched"
// @Router /api/send-alerts-now [POST]
func (h *Handler) SendAlertsNow(c *gin.Context) {
	out, err := h.digest.Run(c.Request.Context())
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, sendAlertsResp{
		Message: fmt.Sprintf("Processed %d subscriptions", out.Total),
		Total:   out.Total,
		Success: out.Success,
		Failed:  out.Failed,
	})
}
