package api

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-cancellation-backend/internal/model"
	"hotel-cancellation-backend/internal/predict"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "index.html"

func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"barHeight": func(v decimal.Decimal) string { return v.StringFixed(2) },
		"barColor":  func(c string) template.CSS { return template.CSS(c) },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

type numericInput struct {
	Key, Label string
	Min        string
	Max        string // empty when unbounded
	Step       string
	Value      string
}

type choiceInput struct {
	Key, Label string
	Options    []string
	Value      string
}

type pageData struct {
	Numeric     []numericInput
	Choices     []choiceInput
	Result      *predict.Result
	Error       string
	FieldErrors model.FieldErrors
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newPageData(attrs model.BookingAttributes) pageData {
	var data pageData
	for _, f := range model.NumericFields() {
		in := numericInput{
			Key:   f.Key,
			Label: f.Label,
			Min:   formatNumber(f.Min),
			Step:  formatNumber(f.Step),
			Value: formatNumber(f.Value(attrs)),
		}
		if f.Max != nil {
			in.Max = formatNumber(*f.Max)
		}
		data.Numeric = append(data.Numeric, in)
	}
	for _, f := range model.ChoiceFields() {
		data.Choices = append(data.Choices, choiceInput{
			Key:     f.Key,
			Label:   f.Label,
			Options: f.Options,
			Value:   f.Value(attrs),
		})
	}
	return data
}

// ShowPage handles GET /: the booking form filled with defaults.
func (h *Handler) ShowPage(c *gin.Context) {
	c.HTML(http.StatusOK, pageTemplate, newPageData(model.DefaultBookingAttributes()))
}

// SubmitPage handles POST / from the booking form and renders the result
// or the validation message under the same form.
func (h *Handler) SubmitPage(c *gin.Context) {
	attrs := model.DefaultBookingAttributes()
	if err := c.ShouldBind(&attrs); err != nil {
		data := newPageData(attrs)
		data.Error = "Could not read the form: " + err.Error()
		c.HTML(http.StatusBadRequest, pageTemplate, data)
		return
	}

	data := newPageData(attrs)
	res, err := h.predict(attrs)
	var fieldErrs model.FieldErrors
	switch {
	case err == nil:
		data.Result = res
		c.HTML(http.StatusOK, pageTemplate, data)
	case errors.Is(err, predict.ErrConflictingHistory):
		data.Error = predict.ConflictingHistoryMessage
		c.HTML(http.StatusUnprocessableEntity, pageTemplate, data)
	case errors.As(err, &fieldErrs):
		data.FieldErrors = fieldErrs
		c.HTML(http.StatusUnprocessableEntity, pageTemplate, data)
	default:
		data.Error = "The prediction could not be computed. Please try again later."
		c.HTML(http.StatusInternalServerError, pageTemplate, data)
	}
}
