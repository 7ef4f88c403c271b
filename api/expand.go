package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brofrain/yew-unocss-transformer/classes"
	"github.com/brofrain/yew-unocss-transformer/vgroup"
)

type ExpandClassesRequest struct {
	Classes []string `json:"classes" binding:"required,min=1,max=256,dive,required,max=512"`
}

type ExpandClassesResponse struct {
	// Classes are the flat class names in expansion order, deduplicated.
	Classes []string `json:"classes"`

	// ClassAttr is the same list space-joined, ready for a class attribute.
	ClassAttr string `json:"class_attr"`
}

// interpolationMarkers make a class string non-literal: its final value is not
// known yet, so expanding it now would be wrong. Same restriction the macro
// boundary enforces at compile time.
var interpolationMarkers = []string{"${", "{{"}

func (s *Service) expandClasses(ctx *gin.Context) {
	var req ExpandClassesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	// only static, fully-known strings may reach the expander
	if field, ok := findNonLiteralClass(req.Classes); !ok {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrNonLiteralClass, field),
		)
		return
	}

	expanded, err := vgroup.Expand(req.Classes)
	if err != nil {
		var expErr *vgroup.ExpandError
		if errors.As(err, &expErr) {
			ctx.JSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrExpandFailed, expandErrorField(expErr)),
			)
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	result := classes.New(expanded...)

	ctx.JSON(http.StatusOK, ExpandClassesResponse{
		Classes:   result.Names(),
		ClassAttr: result.String(),
	})
}

// findNonLiteralClass scans the request classes for interpolation markers.
// Returns ok = false and the offending field when one is found.
func findNonLiteralClass(tokens []string) (field ErrorField, ok bool) {
	for i, token := range tokens {
		for _, marker := range interpolationMarkers {
			if strings.Contains(token, marker) {
				field = ErrorField{
					FieldName:    fmt.Sprintf("classes[%d]", i),
					ErrorMessage: fmt.Sprintf("Class string %q holds dynamic content (%q)", token, marker),
				}
				return
			}
		}
	}

	ok = true
	return
}

// expandErrorField renders a structured expansion error as a field error
// pointing at the offending token.
func expandErrorField(expErr *vgroup.ExpandError) ErrorField {
	return ErrorField{
		FieldName:    fmt.Sprintf("classes[%d]", expErr.TokenIndex),
		ErrorMessage: fmt.Sprintf("%s at byte %d in %q", expErr.Issue, expErr.Offset, expErr.Token),
	}
}
