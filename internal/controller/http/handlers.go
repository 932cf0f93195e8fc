package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ibeloyar/bcproxy/internal/model"
	"github.com/ibeloyar/bcproxy/pgk/auth"
	"go.uber.org/zap"
)

const (
	HealthMessage = "BigCommerce Proxy OK"

	DefaultMetaMaxAge = 60 * time.Second
)

//go:generate mockgen -destination=../../service/mocks/mock_service.go -package=mocks . Service
type Service interface {
	GetOrderMeta(ctx context.Context, orderID, namespace string) (map[string]string, error)
	UpsertOrderTotal(ctx context.Context, orderID string) (*model.OrderTotal, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Controller struct {
	service Service
	pinger  Pinger
	lg      *zap.SugaredLogger

	metaMaxAge time.Duration
}

// New - pinger может быть nil (журнал не подключён)
func New(s Service, p Pinger, lg *zap.SugaredLogger, metaMaxAge time.Duration) *Controller {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}
	if metaMaxAge <= 0 {
		metaMaxAge = DefaultMetaMaxAge
	}

	return &Controller{
		service:    s,
		pinger:     p,
		lg:         lg,
		metaMaxAge: metaMaxAge,
	}
}

func (c *Controller) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(HealthMessage))
}

func (c *Controller) GetOrderMeta(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	meta, err := c.service.GetOrderMeta(r.Context(), query.Get("orderId"), query.Get("namespace"))
	if err != nil {
		c.writeError(w, err)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(c.metaMaxAge.Seconds())))
	writeJSON(w, meta, http.StatusOK)
}

func (c *Controller) GetTotal(w http.ResponseWriter, r *http.Request) {
	total, err := c.service.UpsertOrderTotal(r.Context(), r.URL.Query().Get("orderId"))
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.lg.Infof("order %d: %s/%s = %s (client: %s)",
		total.OrderID, model.InvoiceNamespace, model.InvoiceAmountKey, total.Monto, clientName(r))

	writeJSON(w, total, http.StatusOK)
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if c.pinger == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := c.pinger.Ping(r.Context()); err != nil {
		c.lg.Errorf("database ping error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func clientName(r *http.Request) string {
	tokenInfo := auth.GetTokenInfo[model.TokenInfo](r)
	if tokenInfo == nil || tokenInfo.Client == "" {
		return "anonymous"
	}

	return tokenInfo.Client
}
