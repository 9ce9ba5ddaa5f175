package entity

// MembershipTier is the loyalty level attached to a user account.
type MembershipTier string

const (
	TierStandard MembershipTier = "Standard"
	TierPremium  MembershipTier = "Premium"
	TierVIP      MembershipTier = "VIP"
)

// Activity is a single entry in a user's recent-activity feed.
type Activity struct {
	Action string `json:"action"`
	Date   string `json:"date"`
	Amount string `json:"amount,omitempty"`
}

// User is the authenticated identity together with its profile and loyalty
// snapshot. The JSON tags are the persisted record shape and must round-trip
// through the persistence adapter unchanged.
type User struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	Avatar            string         `json:"avatar"`
	CreatedAt         string         `json:"createdAt"`
	TotalOrders       int            `json:"totalOrders"`
	TotalSpent        float64        `json:"totalSpent"`
	MembershipTier    MembershipTier `json:"membershipTier"`
	NextTierThreshold float64        `json:"nextTierThreshold"`
	WishlistCount     int            `json:"wishlistCount"`
	RewardPoints      int            `json:"rewardPoints"`
	RecentActivity    []Activity     `json:"recentActivity"`
}

// SessionSnapshot is the externally observable state of the session store.
// IsAuthenticated is derived: it is true if and only if User is non-nil.
type SessionSnapshot struct {
	User            *User `json:"user"`
	IsLoading       bool  `json:"isLoading"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}
