package auth

import "context"

var ctxKeyMemberID = struct{ name string }{name: "ctx-key-member-id"}

func ContextWithMemberID(ctx context.Context, memberID int64) context.Context {
	return context.WithValue(ctx, ctxKeyMemberID, memberID)
}

func MemberIDFromContext(ctx context.Context) (int64, bool) {
	memberID, ok := ctx.Value(ctxKeyMemberID).(int64)
	return memberID, ok && memberID > 0
}
