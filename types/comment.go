package types

import "time"

type CommentItem struct {
	ID        uint64    `json:"id"`
	AnswerID  uint64    `json:"answer_id"`
	Author    UserBrief `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentListResponse struct {
	Comments []CommentItem `json:"comments"`
	Page     Page          `json:"page"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=300"`
}
