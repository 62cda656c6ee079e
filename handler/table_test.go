package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza_manager/client"
	"pizza_manager/helper"
)

// fakeBackend dựng backend REST tối thiểu trả đúng vỏ
// {success, result: {items}} cho các test handler.
type fakeBackend struct {
	mutations atomic.Int32 // đếm số mutation nhận được
	tables    string
	zones     string
	failOpen  bool
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/tables":
			fmt.Fprintf(w, `{"success":true,"result":{"items":%s}}`, f.tables)
		case r.Method == http.MethodGet && r.URL.Path == "/zones":
			fmt.Fprintf(w, `{"success":true,"result":{"items":%s}}`, f.zones)
		case r.Method == http.MethodGet && r.URL.Path == "/reservations":
			fmt.Fprint(w, `{"success":true,"result":{"items":[]}}`)
		case r.Method == http.MethodPut && r.URL.Path == "/tables/t1/open":
			f.mutations.Add(1)
			if f.failOpen {
				fmt.Fprint(w, `{"success":false,"message":"Bàn đang bảo trì"}`)
				return
			}
			fmt.Fprint(w, `{"success":true}`)
		default:
			fmt.Fprint(w, `{"success":true}`)
		}
	}
}

func newTableApp(t *testing.T, backend *fakeBackend) (*fiber.App, *helper.Snapshot) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	api := client.New(srv.URL)
	snap := helper.NewSnapshot(
		client.NewTableService(api),
		client.NewZoneService(api),
		client.NewReservationService(api),
	)
	require.NoError(t, snap.Refresh(context.Background()))

	// địa chỉ redis không tồn tại: khóa thao tác fail-open, không chặn test
	locks := NewActionLocks("localhost:1")
	countdowns := helper.NewCountdownManager(30, nil)
	t.Cleanup(countdowns.StopAll)

	h := NewTableHandler(client.NewTableService(api), snap, locks, countdowns)
	app := fiber.New()
	app.Get("/table", h.GetTables)
	app.Put("/table/:tableId/open", func(c *fiber.Ctx) error {
		c.Locals("inputId", c.Params("tableId"))
		return h.OpenTable(c)
	})
	return app, snap
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestGetTablesGroupsByZone(t *testing.T) {
	backend := &fakeBackend{
		tables: `[{"id":"t1","code":"B01","zoneId":"z1","status":"Closing","capacity":4},
		          {"id":"t2","code":"B02","zoneId":"z1","status":"Opening","capacity":2}]`,
		zones: `[{"id":"z1","name":"Tầng trệt"}]`,
	}
	app, _ := newTableApp(t, backend)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/table", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["totalCount"])
	groups := data["groups"].([]any)
	require.Len(t, groups, 1)
	assert.Equal(t, "Tầng trệt", groups[0].(map[string]any)["name"])
}

func TestOpenTableRefetchesSnapshotOnSuccess(t *testing.T) {
	backend := &fakeBackend{
		tables: `[{"id":"t1","code":"B01","zoneId":"z1","status":"Closing","capacity":4}]`,
		zones:  `[{"id":"z1","name":"Tầng trệt"}]`,
	}
	app, snap := newTableApp(t, backend)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/table/t1/open", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])
	assert.EqualValues(t, 1, backend.mutations.Load())

	// refetch sau mutation: snapshot vẫn có dữ liệu, không bị xóa
	assert.Len(t, snap.Tables(), 1)
}

func TestOpenTableRejectedByStateMachine(t *testing.T) {
	// bàn đang mở thì không mở lại được
	backend := &fakeBackend{
		tables: `[{"id":"t1","code":"B01","zoneId":"z1","status":"Opening","capacity":4}]`,
		zones:  `[]`,
	}
	app, _ := newTableApp(t, backend)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/table/t1/open", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.EqualValues(t, 0, backend.mutations.Load(), "mutation không được gửi lên backend")
}

func TestOpenTablePropagatesBackendRefusal(t *testing.T) {
	backend := &fakeBackend{
		tables:   `[{"id":"t1","code":"B01","zoneId":"z1","status":"Closing","capacity":4}]`,
		zones:    `[]`,
		failOpen: true,
	}
	app, _ := newTableApp(t, backend)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/table/t1/open", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Bàn đang bảo trì", body["message"])
}

func TestGetCountdownFallbackUsesConfiguredDuration(t *testing.T) {
	// giờ đặt 40 phút trước: với khoảng chờ 45 phút phải còn Grace,
	// mặc định 30 phút sẽ cho Expired sai
	booking := time.Now().Add(-40 * time.Minute).Format("2006-01-02T15:04:05")
	backend := &fakeBackend{
		tables: fmt.Sprintf(`[{"id":"t1","code":"B01","zoneId":"z1","status":"Reserved","capacity":4,
			"currentReservation":{"id":"r1","bookingTime":"%s"}}]`, booking),
		zones: `[]`,
	}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	api := client.New(srv.URL)
	snap := helper.NewSnapshot(
		client.NewTableService(api),
		client.NewZoneService(api),
		client.NewReservationService(api),
	)
	require.NoError(t, snap.Refresh(context.Background()))

	countdowns := helper.NewCountdownManager(45, nil)
	t.Cleanup(countdowns.StopAll)
	h := NewTableHandler(client.NewTableService(api), snap, NewActionLocks("localhost:1"), countdowns)

	app := fiber.New()
	app.Get("/table/:tableId/countdown", func(c *fiber.Ctx) error {
		c.Locals("inputId", c.Params("tableId"))
		return h.GetCountdown(c)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/table/t1/countdown", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "Grace", data["phase"])
	assert.Equal(t, false, data["expired"])
}

func TestOpenTableUnknownTable(t *testing.T) {
	backend := &fakeBackend{tables: `[]`, zones: `[]`}
	app, _ := newTableApp(t, backend)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/table/t1/open", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
