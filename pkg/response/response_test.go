package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"caterlink/pkg/errors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := newTestContext()

	err := Success(c, map[string]string{"hello": "world"})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"hello":"world"`)
}

func TestErrorMapsAppErrorStatus(t *testing.T) {
	c, rec := newTestContext()

	err := Error(c, errors.Conflict("Execution request already resolved"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"CONFLICT"`)
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	c, rec := newTestContext()

	err := Error(c, assert.AnError)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
}

func TestPaginatedRoundsUpTotalPages(t *testing.T) {
	c, rec := newTestContext()

	err := Paginated(c, []string{"a"}, 21, 1, 10)

	assert.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"totalPages":3`)
}
