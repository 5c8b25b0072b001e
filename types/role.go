package types

// ChatRole is the side a member takes in a chat. It selects which read
// pointer belongs to them.
type ChatRole string

const (
	ChatRoleSeller ChatRole = "SELLER"
	ChatRoleBuyer  ChatRole = "BUYER"
)

func (r ChatRole) String() string {
	return string(r)
}
