// internal/api/dto.go
//
// Request schemas.
//
// Context
// -------
// Every create/update body is decoded into one of these structs and run
// through go-playground/validator before any data-access call.  A failed
// rule short-circuits the request with a 400 carrying the first violated
// rule's message.  Update schemas use pointer fields so an absent key and
// an explicit zero value are distinguishable (partial patch semantics).

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/yanizio/atelier/internal/catalog"
)

var validate = validator.New()

//
// Auth
//

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role" validate:"omitempty,oneof=admin staff"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

//
// Shops
//

type createShopRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=128"`
	Location    string  `json:"location" validate:"required,min=1,max=256"`
	DSN         string  `json:"dsn" validate:"required"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	Status      string  `json:"status" validate:"omitempty,oneof=active pending inactive"`
}

type updateShopRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=128"`
	Location    *string `json:"location" validate:"omitempty,min=1,max=256"`
	DSN         *string `json:"dsn" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	Status      *string `json:"status" validate:"omitempty,oneof=active pending inactive"`
}

//
// Categories
//

type createCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=128"`
	Slug        string  `json:"slug" validate:"omitempty,max=128"`
	Description string  `json:"description" validate:"required"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=128"`
	Slug        *string `json:"slug" validate:"omitempty,min=1,max=128"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}

//
// Products
//

type createProductRequest struct {
	Name           string             `json:"name" validate:"required,min=1,max=256"`
	Category       string             `json:"category" validate:"required,max=128"`
	Price          float64            `json:"price" validate:"required,gte=0"`
	OriginalPrice  *float64           `json:"originalPrice" validate:"omitempty,gte=0"`
	DiscountPct    *float64           `json:"discountPct" validate:"omitempty,gte=0,lte=100"`
	Material       *string            `json:"material"`
	Description    string             `json:"description" validate:"required"`
	Images         catalog.StringList `json:"images"`
	Colors         catalog.StringList `json:"colors"`
	InStock        *bool              `json:"inStock"`
	CollectionType *string            `json:"collectionType"`
	Rating         *float64           `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount    *int               `json:"reviewCount" validate:"omitempty,gte=0"`
}

type updateProductRequest struct {
	Name           *string             `json:"name" validate:"omitempty,min=1,max=256"`
	Category       *string             `json:"category" validate:"omitempty,max=128"`
	Price          *float64            `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice  *float64            `json:"originalPrice" validate:"omitempty,gte=0"`
	DiscountPct    *float64            `json:"discountPct" validate:"omitempty,gte=0,lte=100"`
	Material       *string             `json:"material"`
	Description    *string             `json:"description"`
	Images         *catalog.StringList `json:"images"`
	Colors         *catalog.StringList `json:"colors"`
	InStock        *bool               `json:"inStock"`
	CollectionType *string             `json:"collectionType"`
	Rating         *float64            `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount    *int                `json:"reviewCount" validate:"omitempty,gte=0"`
}

//
// Probe
//

type testConnectionRequest struct {
	DSN string `json:"dsn" validate:"required"`
}

/*──────────────────────────── decode + validate ───────────────────────────*/

// decodeValid decodes the JSON body into dst and validates it.  The
// returned message is user-facing; empty means success.
func decodeValid(r *http.Request, dst any) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return "malformed JSON body", false
	}
	if err := validate.Struct(dst); err != nil {
		return firstViolation(err), false
	}
	return "", true
}

// firstViolation renders the first failed rule as a short message,
// mirroring how the panel's schema layer reported errors.
func firstViolation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}
