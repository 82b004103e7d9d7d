package entity

import (
	"context"
)

type ctxKey int

const (
	ctxKeyActor ctxKey = iota
	ctxKeyJWT
)

// CtxWithActor stores the authenticated actor in the context.
func CtxWithActor(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, ctxKeyActor, user)
}

// ActorFromCtx returns the authenticated actor or ErrUnauthenticated.
func ActorFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(ctxKeyActor).(User)
	if !ok {
		return user, ErrUnauthenticated
	}

	return user, nil
}

func CtxWithJWT(ctx context.Context, jwt string) context.Context {
	return context.WithValue(ctx, ctxKeyJWT, jwt)
}

// JWTFromCtx returns the bearer token from context or an empty string.
func JWTFromCtx(ctx context.Context) string {
	jwt, ok := ctx.Value(ctxKeyJWT).(string)
	if !ok {
		return ""
	}

	return jwt
}
