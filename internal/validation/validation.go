package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"listing-studio/internal/models"
)

// Field limits. The same table drives the live pass and the authoritative
// submit-time pass so the two can never disagree.
const (
	TitleMin       = 5
	TitleMax       = 100
	DescriptionMin = 20
	DescriptionMax = 2000
	TagsMax        = 200
)

var (
	PriceMin = decimal.NewFromFloat(0.01)
	PriceMax = decimal.NewFromInt(10000)
)

// Field is the validity verdict for a single form field.
type Field struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// Result is the whole-form verdict. IsValid is the conjunction of the
// applicable fields; which price fields apply depends on IsAuction.
type Result struct {
	Title         Field `json:"title"`
	Description   Field `json:"description"`
	Price         Field `json:"price"`
	StartingPrice Field `json:"starting_price"`
	ReservePrice  Field `json:"reserve_price"`
	Images        Field `json:"images"`
	Tags          Field `json:"tags"`
	IsValid       bool  `json:"is_valid"`
}

// FirstMessage returns the message of the first failing field, in display
// order, or an empty string when the form is valid.
func (r Result) FirstMessage() string {
	for _, f := range []Field{r.Title, r.Description, r.Price, r.StartingPrice, r.ReservePrice, r.Images, r.Tags} {
		if !f.IsValid {
			return f.Message
		}
	}
	return ""
}

// Evaluate derives field-level and whole-form validity from the current
// form state and the number of files still awaiting upload. It is pure:
// failures mark fields, they are never raised as errors.
func Evaluate(form models.FormState, pendingFiles int) Result {
	r := Result{
		Title:         lengthField(form.Title, TitleMin, TitleMax, "Title"),
		Description:   lengthField(form.Description, DescriptionMin, DescriptionMax, "Description"),
		Price:         Field{IsValid: true},
		StartingPrice: Field{IsValid: true},
		ReservePrice:  Field{IsValid: true},
	}

	if form.IsAuction {
		r.StartingPrice = priceField(form.StartingPrice, "Starting price")
		r.ReservePrice = reserveField(form.ReservePrice, form.StartingPrice)
	} else {
		r.Price = priceField(form.Price, "Price")
	}

	imageCount := len(form.ImageURLs) + pendingFiles
	r.Images = Field{IsValid: imageCount > 0, Count: imageCount}
	if imageCount == 0 {
		r.Images.Message = "Add at least one photo"
	}

	tagLen := len([]rune(strings.TrimSpace(form.Tags)))
	r.Tags = Field{IsValid: tagLen <= TagsMax, Count: tagLen}
	if tagLen > TagsMax {
		r.Tags.Message = fmt.Sprintf("Tags must be at most %d characters", TagsMax)
	}

	r.IsValid = r.Title.IsValid && r.Description.IsValid && r.Price.IsValid &&
		r.StartingPrice.IsValid && r.ReservePrice.IsValid && r.Images.IsValid && r.Tags.IsValid
	return r
}

func lengthField(s string, min, max int, label string) Field {
	n := len([]rune(s))
	f := Field{IsValid: n >= min && n <= max, Count: n}
	if !f.IsValid {
		f.Message = fmt.Sprintf("%s must be between %d and %d characters", label, min, max)
	}
	return f
}

func priceField(s, label string) Field {
	n, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || n.LessThan(PriceMin) || n.GreaterThan(PriceMax) {
		return Field{Message: fmt.Sprintf("%s must be between %s and %s", label, PriceMin, PriceMax)}
	}
	return Field{IsValid: true}
}

// reserveField validates the optional reserve price: when present it must
// parse and be at least the starting price.
func reserveField(reserve, starting string) Field {
	reserve = strings.TrimSpace(reserve)
	if reserve == "" {
		return Field{IsValid: true}
	}
	r, err := decimal.NewFromString(reserve)
	if err != nil {
		return Field{Message: "Reserve price must be a number"}
	}
	s, err := decimal.NewFromString(strings.TrimSpace(starting))
	if err == nil && r.LessThan(s) {
		return Field{Message: "Reserve price must be at least the starting bid"}
	}
	return Field{IsValid: true}
}
