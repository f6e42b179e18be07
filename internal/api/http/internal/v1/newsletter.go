package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/webthingsio/mailchimp-proxy/internal/domain"
	"github.com/webthingsio/mailchimp-proxy/internal/metrics"
	"github.com/webthingsio/mailchimp-proxy/pkg/hash"
	"github.com/webthingsio/mailchimp-proxy/pkg/logger"
)

func (h *Handler) initNewsletterRoutes(api gin.IRouter) {
	newsletter := api.Group("/newsletter")

	newsletter.POST("/subscribe", h.subscribe)
}

type subscribeRequest struct {
	Email     string `json:"email" binding:"required"`
	Subscribe *bool  `json:"subscribe" binding:"required"`
} // @name SubscribeRequest

// @Summary Subscribe
// @Tags Newsletter
// @Description Sets the subscription state of an address on the newsletter list
// @ModuleID subscribe
// @Accept  json
// @Produce  json
// @Param input body subscribeRequest true "subscription"
// @Success 200
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /newsletter/subscribe [post]
func (h *Handler) subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.IncSubscribe(metrics.ResultBadRequest)
		validationErrorResponse(c, err)
		return
	}

	start := time.Now()
	outcome, err := h.services.Newsletter.Subscribe(c.Request.Context(), domain.Subscription{
		Email:     req.Email,
		Subscribe: *req.Subscribe,
	})
	h.metrics.ObserveSubscribe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			h.metrics.IncSubscribe(metrics.ResultBadRequest)
			errorResponse(c, InvalidEmailCode)
			return
		}

		logger.Error("newsletter subscribe failed",
			zap.Error(err),
			zap.String("email", redactEmail(req.Email)),
			zap.String("subscriber_hash", hash.SubscriberHash(req.Email)),
			zap.Bool("subscribe", *req.Subscribe),
			zap.String("request_id", requestID(c)),
		)
		h.metrics.IncSubscribe(metrics.ResultUpstreamError)
		internalErrorResponse(c)
		return
	}

	h.metrics.IncSubscribe(string(outcome))
	c.Status(http.StatusOK)
}
