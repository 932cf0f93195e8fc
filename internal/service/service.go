package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ibeloyar/bcproxy/internal/model"
	"go.uber.org/zap"
)

// journalTimeout покрывает все попытки записи в журнал (3 попытки, паузы 1s и 3s)
const journalTimeout = 10 * time.Second

//go:generate mockgen -destination=../repository/bigcommerce/mocks/mock_upstream.go -package=mocks . UpstreamRepo
type UpstreamRepo interface {
	ListOrderMetafields(ctx context.Context, orderID int64) ([]model.Metafield, error)
	GetOrder(ctx context.Context, orderID int64) (*model.Order, error)
	CreateOrderMetafield(ctx context.Context, orderID int64, input model.MetafieldInput) (*model.Metafield, error)
	UpdateOrderMetafield(ctx context.Context, orderID, metafieldID int64, input model.MetafieldInput) (*model.Metafield, error)
}

//go:generate mockgen -destination=../repository/pg/mocks/mock_journal.go -package=mocks . JournalRepo
type JournalRepo interface {
	RecordUpsert(ctx context.Context, entry model.JournalEntry) error
}

type Service struct {
	upstream UpstreamRepo
	journal  JournalRepo
	lg       *zap.SugaredLogger

	permissionSet string

	journalWG sync.WaitGroup
}

// New - journal может быть nil, тогда журнал upsert'ов не ведётся
func New(u UpstreamRepo, j JournalRepo, permissionSet string, lg *zap.SugaredLogger) *Service {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Service{
		upstream:      u,
		journal:       j,
		lg:            lg,
		permissionSet: permissionSet,
	}
}

// GetOrderMeta - метаполя заказа в виде {key: value}, при namespace != "" только из этого namespace
func (s *Service) GetOrderMeta(ctx context.Context, rawOrderID, namespace string) (map[string]string, error) {
	orderID, err := parseOrderID(rawOrderID)
	if err != nil {
		return nil, err
	}

	metafields, err := s.upstream.ListOrderMetafields(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return flattenMetafields(metafields, namespace), nil
}

func flattenMetafields(metafields []model.Metafield, namespace string) map[string]string {
	result := make(map[string]string, len(metafields))

	for _, m := range metafields {
		if namespace != "" && m.Namespace != namespace {
			continue
		}
		// при совпадении ключей побеждает последняя запись
		result[m.Key] = m.Value
	}

	return result
}

// upsertState - данные, которые шаги upsert'а передают друг другу
type upsertState struct {
	orderID   int64
	monto     model.Amount
	existing  *model.Metafield
	metafield *model.Metafield
	action    model.UpsertAction
}

type upsertStep func(ctx context.Context, st *upsertState) error

// UpsertOrderTotal - считает total_inc_tax + store_credit и записывает его в метаполе factura/MONTO.
// Первая ошибка прерывает цепочку, следующие запросы к BigCommerce не выполняются.
func (s *Service) UpsertOrderTotal(ctx context.Context, rawOrderID string) (*model.OrderTotal, error) {
	orderID, err := parseOrderID(rawOrderID)
	if err != nil {
		return nil, err
	}

	st := &upsertState{orderID: orderID}
	steps := []upsertStep{
		s.computeMonto,
		s.findInvoiceAmount,
		s.writeInvoiceAmount,
	}

	for _, step := range steps {
		if err := step(ctx, st); err != nil {
			return nil, err
		}
	}

	s.recordUpsert(ctx, st)

	return &model.OrderTotal{
		OrderID:   st.orderID,
		Monto:     st.monto,
		Metafield: st.metafield,
	}, nil
}

func (s *Service) computeMonto(ctx context.Context, st *upsertState) error {
	order, err := s.upstream.GetOrder(ctx, st.orderID)
	if err != nil {
		return err
	}

	st.monto = order.Monto()
	return nil
}

func (s *Service) findInvoiceAmount(ctx context.Context, st *upsertState) error {
	metafields, err := s.upstream.ListOrderMetafields(ctx, st.orderID)
	if err != nil {
		return err
	}

	for i := range metafields {
		if metafields[i].Is(model.InvoiceNamespace, model.InvoiceAmountKey) {
			st.existing = &metafields[i]
			break
		}
	}

	return nil
}

func (s *Service) writeInvoiceAmount(ctx context.Context, st *upsertState) error {
	input := model.MetafieldInput{
		PermissionSet: s.permissionSet,
		Namespace:     model.InvoiceNamespace,
		Key:           model.InvoiceAmountKey,
		Value:         st.monto.String(),
	}

	var err error
	if st.existing != nil {
		st.action = model.UpsertActionUpdated
		st.metafield, err = s.upstream.UpdateOrderMetafield(ctx, st.orderID, st.existing.ID, input)
	} else {
		st.action = model.UpsertActionCreated
		st.metafield, err = s.upstream.CreateOrderMetafield(ctx, st.orderID, input)
	}

	return err
}

// recordUpsert - запись в журнал в фоне: ответ клиенту её не ждёт,
// а отключение клиента её не отменяет
func (s *Service) recordUpsert(ctx context.Context, st *upsertState) {
	if s.journal == nil {
		return
	}

	entry := model.JournalEntry{
		ID:        uuid.New(),
		OrderID:   st.orderID,
		Monto:     st.monto,
		Action:    st.action,
		CreatedAt: time.Now().UTC(),
	}
	if st.metafield != nil {
		entry.MetafieldID = st.metafield.ID
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)

	s.journalWG.Add(1)
	go func() {
		defer s.journalWG.Done()
		defer cancel()

		if err := s.journal.RecordUpsert(ctx, entry); err != nil {
			s.lg.Errorf("record upsert of order %d: %v", entry.OrderID, err)
		}
	}()
}

// Wait - дожидается фоновых записей в журнал, вызывается перед закрытием БД
func (s *Service) Wait() {
	s.journalWG.Wait()
}
