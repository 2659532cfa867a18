// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

var authModelDSL = `model
  schema 1.1

type user

type organization
  relations
    define admin: [user]
    define member: [user] or admin

    define can_view: admin or member
    define can_invite: admin
`

type AuthorizationModelProvider struct {
	version string
}

func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	switch p.version {
	case "v0":
		return v0Model()
	default:
		panic(fmt.Sprintf("unknown authorization model version %q", p.version))
	}
}

func v0Model() *fga.AuthorizationModel {
	modelJSON, err := transformer.TransformDSLToJSON(authModelDSL)
	if err != nil {
		panic(fmt.Sprintf("invalid authorization model DSL: %v", err))
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(modelJSON), model); err != nil {
		panic(fmt.Sprintf("failed to unmarshal authorization model: %v", err))
	}

	return model
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	p := new(AuthorizationModelProvider)
	p.version = version
	return p
}
