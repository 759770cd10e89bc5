package publicauth

import "context"

type ctxKey string

const accountKey ctxKey = "account"

// ContextWithAccount stores the authenticated account on the request context.
func ContextWithAccount(ctx context.Context, account *Account) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

// AccountFromContext returns the authenticated account, if any.
func AccountFromContext(ctx context.Context) (*Account, bool) {
	account, ok := ctx.Value(accountKey).(*Account)
	return account, ok && account != nil
}
