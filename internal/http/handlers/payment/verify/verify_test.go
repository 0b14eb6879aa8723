package verify

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Verify(ctx context.Context, paymentID string) bool {
	return m.Called(ctx, paymentID).Bool(0)
}

func TestVerifyHandler_ServeHTTP(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, verified := range []bool{true, false} {
		svc := new(ServiceMock)
		svc.On("Verify", mock.Anything, "pay_1").Return(verified).Once()

		req := httptest.NewRequest(http.MethodGet, "/payments/pay_1/verify", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "pay_1")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rec := httptest.NewRecorder()
		New(logger, svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		want := `{"status":"OK","data":{"payment_id":"pay_1","verified":false}}`
		if verified {
			want = `{"status":"OK","data":{"payment_id":"pay_1","verified":true}}`
		}
		assert.JSONEq(t, want, rec.Body.String())
	}
}
