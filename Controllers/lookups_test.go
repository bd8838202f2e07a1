package Controllers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Brokerage/Models"
)

func TestLookupCreateVariants(t *testing.T) {
	app, _ := newTestApp(t)

	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{"success", `{"name":"Cash"}`, fiber.StatusCreated},
		{"duplicate name", `{"name":"Cash"}`, fiber.StatusConflict},
		{"blank name", `{"name":"   "}`, fiber.StatusBadRequest},
		{"missing name", `{}`, fiber.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			resp := doRequest(t, app, "POST", "/api/payment-types", tc.body)
			defer resp.Body.Close()
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestLookupCreateTrimsName(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/flags", `{"name":"  Urgent  "}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created Models.LookupRow
	decodeBody(t, resp, &created)
	assert.Equal(t, "Urgent", created.Name)
	assert.True(t, created.IsActive)
	assert.NotZero(t, created.ID)
}

func TestLookupListSearch(t *testing.T) {
	app, _ := newTestApp(t)

	for _, name := range []string{"Groundnut Oil", "Sunflower Oil", "Cotton Cake"} {
		resp := doRequest(t, app, "POST", "/api/item-types", fmt.Sprintf(`{"name":%q}`, name))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doRequest(t, app, "GET", "/api/item-types?q=oil", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []Models.LookupRow
	decodeBody(t, resp, &rows)
	require.Len(t, rows, 2)
	// ordered by name
	assert.Equal(t, "Groundnut Oil", rows[0].Name)
	assert.Equal(t, "Sunflower Oil", rows[1].Name)
}

func TestLookupUpdate(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/qty-types", `{"name":"Tons"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created Models.LookupRow
	decodeBody(t, resp, &created)

	resp = doRequest(t, app, "PUT", fmt.Sprintf("/api/qty-types/%d", created.ID), `{"name":"Quintals"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated Models.LookupRow
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Quintals", updated.Name)

	resp = doRequest(t, app, "PUT", "/api/qty-types/9999", `{"name":"Bags"}`)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLookupSoftDeleteKeepsRow(t *testing.T) {
	app, db := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/delivery-places", `{"name":"Kurnool"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created Models.LookupRow
	decodeBody(t, resp, &created)

	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/api/delivery-places/%d", created.ID), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// gone from listings
	resp = doRequest(t, app, "GET", "/api/delivery-places", "")
	var rows []Models.LookupRow
	decodeBody(t, resp, &rows)
	assert.Empty(t, rows)

	// but the row survives with is_active=false
	var kept Models.LookupRow
	require.NoError(t, db.Table("delivery_places").Where("id = ?", created.ID).First(&kept).Error)
	assert.False(t, kept.IsActive)
	assert.Equal(t, "Kurnool", kept.Name)
}

func TestLookupBulkDelete(t *testing.T) {
	app, db := newTestApp(t)

	var ids []uint
	for _, name := range []string{"NEFT", "RTGS", "Cheque"} {
		resp := doRequest(t, app, "POST", "/api/payment-types", fmt.Sprintf(`{"name":%q}`, name))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		var created Models.LookupRow
		decodeBody(t, resp, &created)
		ids = append(ids, created.ID)
	}

	resp := doRequest(t, app, "POST", "/api/payment-types/bulk-delete",
		fmt.Sprintf(`{"ids":[%d,%d]}`, ids[0], ids[1]))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var active int64
	db.Table("payment_types").Where("is_active = ?", true).Count(&active)
	assert.EqualValues(t, 1, active)
}

func TestLookupBulkDeleteRejectsEmptyIDSet(t *testing.T) {
	app, db := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/flags", `{"name":"Pending"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	for _, body := range []string{`{"ids":[]}`, `{"ids":[0,-3]}`, `{}`} {
		resp := doRequest(t, app, "POST", "/api/flags/bulk-delete", body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	}

	// no mutations happened
	var active int64
	db.Table("flags").Where("is_active = ?", true).Count(&active)
	assert.EqualValues(t, 1, active)
}
