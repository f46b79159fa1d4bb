// MIT License
//
// Copyright (c) 2020 codingfinest
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package graphwalk

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

//Labels and property keys are written into the query text, so they must be plain identifiers.
var (
	validate        = newValidator()
	identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("cypherident", func(fl validator.FieldLevel) bool {
		return identifierRegex.MatchString(fl.Field().String())
	})
	return v
}

func validateNode(node NodeDescriptor) error {
	if err := validate.Struct(node); err != nil {
		return fmt.Errorf("%w: node %q: %v", ErrInvalidDescriptor, node.Label, err)
	}
	return nil
}

func validateEdge(edge EdgeDescriptor) error {
	if err := validate.Struct(edge); err != nil {
		return fmt.Errorf("%w: edge %q: %v", ErrInvalidDescriptor, edge.Label, err)
	}
	return nil
}

//validateEndpoint checks a node whose label may be left empty.
func validateEndpoint(node NodeDescriptor) error {
	if node.Label == "" {
		if err := validate.Var(node.Props, "omitempty,dive,keys,cypherident,endkeys"); err != nil {
			return fmt.Errorf("%w: unlabelled node: %v", ErrInvalidDescriptor, err)
		}
		return nil
	}
	return validateNode(node)
}

func validateLabel(label string) error {
	if err := validate.Var(label, "required,cypherident"); err != nil {
		return fmt.Errorf("%w: label %q: %v", ErrInvalidDescriptor, label, err)
	}
	return nil
}
