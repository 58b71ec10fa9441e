package dao

import (
	"context"

	"zhihuer/models"

	"gorm.io/gorm"
)

// countRow 分组计数的通用扫描载体
type countRow struct {
	ObjectID uint64 `gorm:"column:object_id"`
	Total    int64  `gorm:"column:total"`
}

func rowsToMap(rows []countRow) map[uint64]int64 {
	m := make(map[uint64]int64, len(rows))
	for _, r := range rows {
		m[r.ObjectID] = r.Total
	}
	return m
}

// FollowAnswers 点赞回答关系
type FollowAnswers struct {
	Repo[models.UserFollowAnswer]
}

func NewFollowAnswers(db *gorm.DB) *FollowAnswers {
	return &FollowAnswers{Repo: NewRepo[models.UserFollowAnswer](db)}
}

func (d *FollowAnswers) Exists(ctx context.Context, userID, answerID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND answer_id = ?", userID, answerID)
}

func (d *FollowAnswers) Add(ctx context.Context, userID, answerID uint64) error {
	return d.Create(ctx, &models.UserFollowAnswer{UserID: userID, AnswerID: answerID})
}

func (d *FollowAnswers) Remove(ctx context.Context, userID, answerID uint64) error {
	return d.DeleteByWhere(ctx, "user_id = ? AND answer_id = ?", userID, answerID)
}

// CountByAnswers 批量取各回答的点赞数（按用户去重）
func (d *FollowAnswers) CountByAnswers(ctx context.Context, answerIDs []uint64) (map[uint64]int64, error) {
	if len(answerIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	var rows []countRow
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollowAnswer{}).
		Select("answer_id AS object_id, COUNT(DISTINCT user_id) AS total").
		Where("answer_id IN ?", answerIDs).
		Group("answer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToMap(rows), nil
}

// ListByUser 用户点赞过的记录，按点赞时间倒序
func (d *FollowAnswers) ListByUser(ctx context.Context, userID uint64) ([]*models.UserFollowAnswer, error) {
	var edges []*models.UserFollowAnswer
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&edges).Error
	return edges, err
}

// CollectAnswers 收藏回答关系
type CollectAnswers struct {
	Repo[models.UserCollectAnswer]
}

func NewCollectAnswers(db *gorm.DB) *CollectAnswers {
	return &CollectAnswers{Repo: NewRepo[models.UserCollectAnswer](db)}
}

func (d *CollectAnswers) Exists(ctx context.Context, userID, answerID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND answer_id = ?", userID, answerID)
}

func (d *CollectAnswers) Add(ctx context.Context, userID, answerID uint64) error {
	return d.Create(ctx, &models.UserCollectAnswer{UserID: userID, AnswerID: answerID})
}

func (d *CollectAnswers) Remove(ctx context.Context, userID, answerID uint64) error {
	return d.DeleteByWhere(ctx, "user_id = ? AND answer_id = ?", userID, answerID)
}

func (d *CollectAnswers) ListByUser(ctx context.Context, userID uint64) ([]*models.UserCollectAnswer, error) {
	var edges []*models.UserCollectAnswer
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&edges).Error
	return edges, err
}

// FollowQuestions 关注问题关系
type FollowQuestions struct {
	Repo[models.UserFollowQuestion]
}

func NewFollowQuestions(db *gorm.DB) *FollowQuestions {
	return &FollowQuestions{Repo: NewRepo[models.UserFollowQuestion](db)}
}

func (d *FollowQuestions) Exists(ctx context.Context, userID, questionID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND question_id = ?", userID, questionID)
}

func (d *FollowQuestions) Add(ctx context.Context, userID, questionID uint64) error {
	return d.Create(ctx, &models.UserFollowQuestion{UserID: userID, QuestionID: questionID})
}

func (d *FollowQuestions) Remove(ctx context.Context, userID, questionID uint64) error {
	return d.DeleteByWhere(ctx, "user_id = ? AND question_id = ?", userID, questionID)
}

// CountByQuestion 各问题的关注人数
func (d *FollowQuestions) CountByQuestion(ctx context.Context) ([]QuestionFollowRow, error) {
	var rows []QuestionFollowRow
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollowQuestion{}).
		Select("question_id, COUNT(DISTINCT user_id) AS followers").
		Group("question_id").
		Scan(&rows).Error
	return rows, err
}

func (d *FollowQuestions) ListByUser(ctx context.Context, userID uint64) ([]*models.UserFollowQuestion, error) {
	var edges []*models.UserFollowQuestion
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&edges).Error
	return edges, err
}

// QuestionFollowRow 问题与其关注人数
type QuestionFollowRow struct {
	QuestionID uint64 `gorm:"column:question_id"`
	Followers  int64  `gorm:"column:followers"`
}

// FollowTopics 关注话题关系
type FollowTopics struct {
	Repo[models.UserFollowTopic]
}

func NewFollowTopics(db *gorm.DB) *FollowTopics {
	return &FollowTopics{Repo: NewRepo[models.UserFollowTopic](db)}
}

func (d *FollowTopics) Exists(ctx context.Context, userID, topicID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND topic_id = ?", userID, topicID)
}

func (d *FollowTopics) Add(ctx context.Context, userID, topicID uint64) error {
	return d.Create(ctx, &models.UserFollowTopic{UserID: userID, TopicID: topicID})
}

func (d *FollowTopics) Remove(ctx context.Context, userID, topicID uint64) error {
	return d.DeleteByWhere(ctx, "user_id = ? AND topic_id = ?", userID, topicID)
}

// Relationships 用户关注用户关系
type Relationships struct {
	Repo[models.UserRelationship]
}

func NewRelationships(db *gorm.DB) *Relationships {
	return &Relationships{Repo: NewRepo[models.UserRelationship](db)}
}

func (d *Relationships) Exists(ctx context.Context, followerID, followedID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND followed_id = ?", followerID, followedID)
}

func (d *Relationships) Add(ctx context.Context, followerID, followedID uint64) error {
	return d.Create(ctx, &models.UserRelationship{FollowerID: followerID, FollowedID: followedID})
}

func (d *Relationships) Remove(ctx context.Context, followerID, followedID uint64) error {
	return d.DeleteByWhere(ctx, "follower_id = ? AND followed_id = ?", followerID, followedID)
}
