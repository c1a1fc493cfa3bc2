package chat

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultDirectChatName is the chat name given to one-on-one chats.
const DefaultDirectChatName = "Direct Chat"

// Chat is a conversation record. Direct chats hold exactly two
// participants; the participant pair is stored sorted so the
// uniqueness index is order-independent.
type Chat struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ChatName    string               `bson:"chatName" json:"chatName"`
	IsGroupChat bool                 `bson:"isGroupChat" json:"isGroupChat"`
	Users       []primitive.ObjectID `bson:"users" json:"users"`
	// PairKey is set on direct chats only; a unique sparse index on it
	// makes the participant pair unique regardless of request order.
	PairKey   string    `bson:"pairKey,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SortUserPair returns the two ids in canonical order.
func SortUserPair(a, b primitive.ObjectID) []primitive.ObjectID {
	if a.Hex() <= b.Hex() {
		return []primitive.ObjectID{a, b}
	}
	return []primitive.ObjectID{b, a}
}

// PairKeyFor builds the canonical index key for a direct chat pair.
func PairKeyFor(a, b primitive.ObjectID) string {
	pair := SortUserPair(a, b)
	return pair[0].Hex() + ":" + pair[1].Hex()
}
