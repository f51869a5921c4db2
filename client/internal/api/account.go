package api

import (
	"context"

	"github.com/mite-eleven/mite-go/client/internal/types"
)

// GetAccount returns the account the credentials belong to.
func GetAccount(ctx context.Context, c Caller) (*types.Account, error) {
	var a types.Account
	if err := getSingleton(ctx, c, "/account.json", types.KeyAccount, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetMyself returns the user the credentials belong to.
func GetMyself(ctx context.Context, c Caller) (*types.User, error) {
	var u types.User
	if err := getSingleton(ctx, c, "/myself.json", types.KeyUser, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
