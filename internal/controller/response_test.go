package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ingaa_store/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"未登录", service.ErrUnauthorized, http.StatusUnauthorized},
		{"越权", service.ErrForbidden, http.StatusForbidden},
		{"商品不存在", service.ErrProductNotFound, http.StatusNotFound},
		{"购物车条目不存在", service.ErrCartItemNotFound, http.StatusNotFound},
		{"空购物车", service.ErrCartEmpty, http.StatusBadRequest},
		{"包装后的校验错误", fmt.Errorf("下单: %w", service.ValidationError("bad")), http.StatusBadRequest},
		{"未知错误", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, float64(tt.status), body["code"])
			assert.Equal(t, tt.err.Error(), body["message"])
		})
	}
}

func TestSuccessEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	success(c, http.StatusCreated, gin.H{"id": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"success","data":{"id":7}}`, w.Body.String())
}

func TestParseID(t *testing.T) {
	r := gin.New()
	r.GET("/items/:id", func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		success(c, http.StatusOK, id)
	})

	for path, status := range map[string]int{
		"/items/12":  http.StatusOK,
		"/items/0":   http.StatusBadRequest,
		"/items/-3":  http.StatusBadRequest,
		"/items/abc": http.StatusBadRequest,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, status, w.Code, path)
	}
}
