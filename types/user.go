package types

import "time"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=40"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=64"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserProfile struct {
	ID          uint64    `json:"id"`
	Username    string    `json:"username"`
	Nickname    string    `json:"nickname"`
	Gender      string    `json:"gender"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	Confirmed   bool      `json:"confirmed"`
	CreatedAt   time.Time `json:"created_at"`

	FollowerNums  int64 `json:"follower_nums"`
	FollowingNums int64 `json:"following_nums"`
}
