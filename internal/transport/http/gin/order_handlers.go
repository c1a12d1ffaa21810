package httpgin

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MAksum123456/fly-port-api/internal/domain"
	redisrepo "github.com/MAksum123456/fly-port-api/internal/repository/redis"
)

// @Summary  List own orders
// @Success  200  {array}  OrderResponse
// @Security BearerAuth
// @Router   /orders [get]
func handleListOrders(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := identityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: errMissingToken.Error()})
			return
		}

		out, err := svc.List(c.Request.Context(), ident)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderList(out))
	}
}

// @Summary  Get order with ticket and flight details
// @Param    id  path  string  true  "Order ID (uuid)"
// @Success  200  {object}  OrderDetailResponse
// @Failure  403  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /orders/{id} [get]
func handleGetOrder(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := identityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: errMissingToken.Error()})
			return
		}

		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			badRequest(c, "invalid order id")
			return
		}

		out, err := svc.Get(c.Request.Context(), ident, orderID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderDetailResponse(*out))
	}
}

const idemLockTTL = 60 * time.Second

// replayStoredOrder writes back the stored first response for an idempotent
// retry. Returns false when no finished response exists for the key yet.
func replayStoredOrder(c *gin.Context, idem *redisrepo.IdempotencyStore, storageKey, idemKey string) bool {
	payload, ok, _ := idem.GetResult(c.Request.Context(), storageKey)
	if !ok {
		return false
	}

	c.Header("Idempotency-Key", idemKey)
	c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
	return true
}

// @Summary  Book tickets (idempotent)
// @Param    req  body  CreateOrderRequest  true  "payload"
// @Header   201  {string}  Idempotency-Key  "echo"
// @Success  201  {object}  OrderResponse
// @Failure  400  {object}  ValidationErrorResponse
// @Failure  409  {object}  ErrorResponse  "idem in progress"
// @Failure  429  {object}  ErrorResponse  "rate limited"
// @Security BearerAuth
// @Router   /orders [post]
func handleCreateOrder(
	svc BookingService,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := identityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: errMissingToken.Error()})
			return
		}

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			// scoped per user so callers cannot replay each other
			idemStorageKey = redisrepo.KeyIdemOrder(ident.UserID.String(), idemKey)

			if replayStoredOrder(c, idem, idemStorageKey, idemKey) {
				return
			}

			locked, err := idem.AcquireLock(c.Request.Context(), idemStorageKey, idemLockTTL)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				// The first request may have finished between the replay
				// check and the lock attempt.
				if replayStoredOrder(c, idem, idemStorageKey, idemKey) {
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(http.StatusConflict, ErrorResponse{Error: "idempotency key in progress"})
				return
			}
		}

		reqs := make([]domain.TicketRequest, 0, len(req.Tickets))
		for _, t := range req.Tickets {
			reqs = append(reqs, domain.TicketRequest{
				FlightID: t.Flight,
				Row:      t.Row,
				Seat:     t.Seat,
				Class:    domain.TicketClass(t.TicketClass),
			})
		}

		rlKey := "user:" + ident.UserID.String()

		o, err := svc.CreateOrder(c.Request.Context(), ident, reqs, rlKey)
		if err != nil {
			if idemStorageKey != "" {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		resp := toOrderResponse(*o)

		if idemStorageKey != "" {
			if b, err := json.Marshal(resp); err == nil {
				_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			}
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}
