package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cellcontrol/internal/delivery/api/router/handler"
	"cellcontrol/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type jsonObject = map[string]any

func TestServer_HealthAndMetrics(t *testing.T) {
	f := newAPIFixtures(t)

	rec := f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-request", rec.Header().Get("X-Request-Id"))

	rec = f.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `cellcontrol_http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestServer_LoginAndMe(t *testing.T) {
	f := newAPIFixtures(t)
	tenant, token := f.store(t, "Loja A")

	rec := f.do(t, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	me := decode[handler.MeResponse](t, rec)
	assert.Equal(t, "admin@lojaa.com", me.User.Email)
	require.NotNil(t, me.Tenant)
	assert.Equal(t, tenant.Slug, me.Tenant.Slug)
	assert.NotContains(t, rec.Body.String(), "password")

	t.Run("wrong password", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/auth/login", "", jsonObject{"email": "admin@lojaa.com", "password": "nope"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decode[errorBody](t, rec)
		assert.Equal(t, "INVALID_CREDENTIALS", body.Code)
		assert.Equal(t, "test-request", body.RequestID)
		assert.NotEmpty(t, body.Detail)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/auth/login", "", jsonObject{"email": "admin@lojaa.com"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode[errorBody](t, rec).Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/auth/login", "", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode[errorBody](t, rec).Code)
	})

	t.Run("no token", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/auth/me", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decode[errorBody](t, rec).Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/auth/me", "not-a-jwt", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "TOKEN_INVALID", decode[errorBody](t, rec).Code)
	})
}

func TestServer_VerifyStore(t *testing.T) {
	f := newAPIFixtures(t)
	f.store(t, "Loja A")

	rec := f.do(t, http.MethodGet, "/tenants/lojaa/verify", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	info := decode[handler.StoreInfoResponse](t, rec)
	assert.True(t, info.Exists)
	assert.Equal(t, "Loja A", info.Name)

	rec = f.do(t, http.MethodGet, "/tenants/missing/verify", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_TenantIsolation(t *testing.T) {
	f := newAPIFixtures(t)
	_, tokenA := f.store(t, "Loja A")
	_, tokenB := f.store(t, "Loja B")

	createB := func(resource string, body jsonObject) string {
		t.Helper()
		rec := f.do(t, http.MethodPost, "/tenants/lojab/"+resource, tokenB, body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		return decode[jsonObject](t, rec)["id"].(string)
	}
	modelB := createB("models", jsonObject{"name": "Galaxy S23"})
	productB := createB("products", jsonObject{"modelId": modelB, "color": "Preto", "storage": "256GB", "price": 3999})
	soldB := createB("products", jsonObject{"modelId": modelB, "color": "Verde", "storage": "128GB", "price": 2999})
	customerB := createB("customers", jsonObject{"name": "Carla", "cpf": "98765432100", "whatsapp": "11988887777"})
	saleB := createB("sales", jsonObject{"customerId": customerB, "productIds": []string{soldB}, "paymentMethod": "pix"})

	t.Run("foreign slug redirects to own store", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/tenants/lojab/models", tokenA, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		body := decode[errorBody](t, rec)
		assert.Equal(t, "WRONG_TENANT", body.Code)
		assert.Equal(t, "/tenants/lojaa", body.Redirect)
		assert.Equal(t, "test-request", body.RequestID)
	})

	foreign := []struct {
		resource string
		id       string
		update   jsonObject
	}{
		{"models", modelB, jsonObject{"name": "hijacked"}},
		{"products", productB, jsonObject{"color": "hijacked"}},
		{"customers", customerB, jsonObject{"name": "hijacked"}},
		{"sales", saleB, jsonObject{"note": "hijacked"}},
	}
	for _, tt := range foreign {
		t.Run("foreign "+tt.resource+" id through own slug is not found", func(t *testing.T) {
			target := "/tenants/lojaa/" + tt.resource + "/" + tt.id

			assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, target, tokenA, nil).Code)
			assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPut, target, tokenA, tt.update).Code)
			assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, target, tokenA, nil).Code)

			rec := f.do(t, http.MethodGet, "/tenants/lojab/"+tt.resource+"/"+tt.id, tokenB, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.NotContains(t, rec.Body.String(), "hijacked")
		})
	}

	t.Run("lists only show own records", func(t *testing.T) {
		for _, resource := range []string{"models", "products", "customers", "sales"} {
			rec := f.do(t, http.MethodGet, "/tenants/lojaa/"+resource, tokenA, nil)

			require.Equal(t, http.StatusOK, rec.Code, resource)
			assert.JSONEq(t, `[]`, rec.Body.String(), resource)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/tenants/lojaa/models", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("super admin has no store access", func(t *testing.T) {
		root := f.superAdmin(t)

		rec := f.do(t, http.MethodGet, "/tenants/lojaa/models", root, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, decode[errorBody](t, rec).Redirect)
	})

	t.Run("store admin has no admin access", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/admin/tenants", tokenA, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestServer_SaleFlow(t *testing.T) {
	f := newAPIFixtures(t)
	_, token := f.store(t, "Loja A")
	base := "/tenants/lojaa"

	rec := f.do(t, http.MethodPost, base+"/models", token, jsonObject{"name": "iPhone 13"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	modelID := decode[jsonObject](t, rec)["id"].(string)

	createProduct := func(price any) string {
		t.Helper()
		rec := f.do(t, http.MethodPost, base+"/products", token, jsonObject{
			"modelId": modelID, "color": "Azul", "storage": "128GB", "batteryPercent": 90, "price": price,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		return decode[jsonObject](t, rec)["id"].(string)
	}
	p1 := createProduct("R$ 1.234,50")
	p2 := createProduct(100)

	rec = f.do(t, http.MethodPost, base+"/customers", token, jsonObject{
		"name": "Maria Silva", "cpf": "123.456.789-00", "whatsapp": "(11) 99999-8888",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	customer := decode[jsonObject](t, rec)
	assert.Equal(t, "12345678900", customer["cpf"])
	assert.Equal(t, "123.456.789-00", customer["cpfFormatted"])
	assert.Equal(t, "11999998888", customer["whatsapp"])
	assert.Equal(t, "(11) 99999-8888", customer["whatsappFormatted"])
	customerID := customer["id"].(string)

	rec = f.do(t, http.MethodPost, base+"/sales", token, jsonObject{
		"customerId": customerID, "productIds": []string{p1, p2}, "paymentMethod": "pix", "note": " parcelado ",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sale := decode[jsonObject](t, rec)
	assert.Equal(t, 1334.5, sale["totalValue"])
	assert.Contains(t, rec.Body.String(), `"totalValue":1334.50`)
	assert.Equal(t, "Maria Silva", sale["customerName"])
	items := sale["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, p1, items[0].(jsonObject)["productId"])
	saleID := sale["id"].(string)

	t.Run("sold product cannot be sold again", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, base+"/sales", token, jsonObject{
			"customerId": customerID, "productIds": []string{p2}, "paymentMethod": "cash",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "PRODUCT_UNAVAILABLE", decode[errorBody](t, rec).Code)
	})

	t.Run("invalid payment method", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, base+"/sales", token, jsonObject{
			"customerId": customerID, "productIds": []string{p2}, "paymentMethod": "cheque",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[errorBody](t, rec).Detail, "paymentMethod")
	})

	t.Run("sale needs products", func(t *testing.T) {
		for _, body := range []jsonObject{
			{"customerId": customerID, "productIds": []string{}, "paymentMethod": "cash"},
			{"customerId": customerID, "paymentMethod": "cash"},
		} {
			rec := f.do(t, http.MethodPost, base+"/sales", token, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[errorBody](t, rec).Detail, "add at least one product")
		}
	})

	t.Run("unknown customer is checked first", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, base+"/sales", token, jsonObject{
			"customerId": "0190f5a4-8a3b-7c1d-9e2f-0000000000ee", "productIds": []string{}, "paymentMethod": "cash",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("stock filter", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, base+"/products?sold=false", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[[]jsonObject](t, rec))

		rec = f.do(t, http.MethodGet, base+"/products?sold=maybe", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("dashboard keeps the storefront keys", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, base+"/dashboard", token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		dashboard := decode[jsonObject](t, rec)
		assert.EqualValues(t, 1, dashboard["total_vendas"])
		assert.Equal(t, 1334.5, dashboard["valor_total_vendas"])
		assert.EqualValues(t, 0, dashboard["total_produtos"])
		assert.Len(t, dashboard["modelos_sem_estoque"], 1)
		assert.Len(t, dashboard["modelos_com_estoque"], 0)
		top := dashboard["top_modelos"].([]any)
		require.Len(t, top, 1)
		assert.EqualValues(t, 2, top[0].(jsonObject)["quantity"])

		rec = f.do(t, http.MethodGet, base+"/dashboard?month=2024-13", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("customer with sales cannot be deleted", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, base+"/customers/"+customerID, token, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "CUSTOMER_IN_USE", decode[errorBody](t, rec).Code)
	})

	t.Run("update note", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, base+"/sales/"+saleID, token, jsonObject{"note": "entregue"})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "entregue", decode[jsonObject](t, rec)["note"])
	})

	t.Run("delete restores stock", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, base+"/sales/"+saleID, token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		rec = f.do(t, http.MethodGet, base+"/products?sold=false", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]jsonObject](t, rec), 2)

		rec = f.do(t, http.MethodDelete, base+"/sales/"+saleID, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_AdminConsole(t *testing.T) {
	f := newAPIFixtures(t)
	root := f.superAdmin(t)

	rec := f.do(t, http.MethodPost, "/admin/tenants", root, jsonObject{"name": "Isaac Imports"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tenant := decode[jsonObject](t, rec)
	assert.Equal(t, "isaacimports", tenant["slug"])
	tenantID := tenant["id"].(string)

	rec = f.do(t, http.MethodPost, "/admin/tenants", root, jsonObject{"name": "Isaac Imports"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SLUG_TAKEN", decode[errorBody](t, rec).Code)

	rec = f.do(t, http.MethodPost, "/admin/users", root, jsonObject{
		"email": "isaac@imports.com", "name": "Isaac", "password": testPassword, "role": "tenant_admin", "tenantId": tenantID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	user := decode[jsonObject](t, rec)
	assert.Equal(t, "isaacimports", user["tenantSlug"])
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	rec = f.do(t, http.MethodPut, "/admin/tenants/"+tenantID, root, jsonObject{"active": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, false, decode[jsonObject](t, rec)["active"])

	t.Run("disabled store", func(t *testing.T) {
		token := f.login(t, "isaac@imports.com")

		rec := f.do(t, http.MethodGet, "/tenants/isaacimports/models", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "TENANT_INACTIVE", decode[errorBody](t, rec).Code)

		rec = f.do(t, http.MethodGet, "/tenants/isaacimports/verify", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("dashboard", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/admin/dashboard", root, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		dashboard := decode[jsonObject](t, rec)
		assert.EqualValues(t, 1, dashboard["totalTenants"])
		assert.EqualValues(t, 0, dashboard["activeTenants"])
		assert.EqualValues(t, 2, dashboard["totalUsers"])
	})

	t.Run("qr code", func(t *testing.T) {
		png := []byte("\x89PNG\r\n")
		f.qr.EXPECT().StoreLoginQR(mock.Anything, "isaacimports").Return(png, nil)
		f.qr.EXPECT().StoreLoginURL("isaacimports").Return("https://app.example.com/tenants/isaacimports/login")

		rec := f.do(t, http.MethodGet, "/admin/tenants/"+tenantID+"/qrcode", root, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
		assert.Equal(t, "https://app.example.com/tenants/isaacimports/login", rec.Header().Get("X-Store-Login-Url"))
	})

	t.Run("cannot delete self", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/admin/users", root, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var rootID string
		for _, u := range decode[[]jsonObject](t, rec) {
			if u["role"] == "super_admin" {
				rootID = u["id"].(string)
			}
		}
		require.NotEmpty(t, rootID)

		rec = f.do(t, http.MethodDelete, "/admin/users/"+rootID, root, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/admin/tenants/not-a-uuid", root, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Import(t *testing.T) {
	f := newAPIFixtures(t)
	root := f.superAdmin(t)
	tenant, token := f.store(t, "Loja A")

	upload := func(dataType, filename, content string) *httptest.ResponseRecorder {
		t.Helper()
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = io.Copy(part, strings.NewReader(content))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		target := fmt.Sprintf("/admin/import/%s?dataType=%s", tenant.ID, dataType)
		req := httptest.NewRequest(http.MethodPost, target, &body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+root)

		return f.serve(req)
	}

	rec := upload(string(usecase.ImportCustomers), "clientes.csv", "nome;cpf;whatsapp\nMaria;123.456.789-00;11999998888\nJoão;123;11999997777\n")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := decode[handler.ImportResponse](t, rec)
	assert.False(t, result.Success)
	assert.Equal(t, "customers", result.DataType)
	assert.Equal(t, 2, result.TotalRecords)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Details.Customers)
	require.Len(t, result.Errors, 1)

	rec = f.do(t, http.MethodGet, "/tenants/lojaa/customers?q=maria", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]jsonObject](t, rec), 1)

	t.Run("json models", func(t *testing.T) {
		rec := upload("", "modelos.json", `[{"nome": "iPhone 15"}, {"name": "Galaxy S24"}]`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		result := decode[handler.ImportResponse](t, rec)
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.Details.Models)
		assert.Empty(t, result.Errors)
	})

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/import/"+tenant.ID.String(), nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+root)

		rec := f.serve(req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
