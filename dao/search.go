package dao

import (
	"context"
	"strings"

	"zhihuer/models"

	"gorm.io/gorm"
)

// likeAny 把分词结果拼成 OR LIKE 条件，命中任意一个词就算匹配
func likeAny(db *gorm.DB, column string, terms []string) *gorm.DB {
	clauses := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms))
	for _, term := range terms {
		clauses = append(clauses, column+" LIKE ?")
		args = append(args, "%"+term+"%")
	}
	return db.Where(strings.Join(clauses, " OR "), args...)
}

// SearchByTitle 标题全文匹配，按ID升序保证结果稳定
func (d *Questions) SearchByTitle(ctx context.Context, terms []string, limit int) ([]*models.Question, error) {
	var questions []*models.Question
	err := likeAny(d.Db.WithContext(ctx), "title", terms).
		Order("id ASC").
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

func (d *Answers) SearchByContent(ctx context.Context, terms []string, limit int) ([]*models.Answer, error) {
	var answers []*models.Answer
	err := likeAny(d.Db.WithContext(ctx), "content", terms).
		Order("id ASC").
		Limit(limit).
		Find(&answers).Error
	return answers, err
}

func (d *Topics) SearchByName(ctx context.Context, terms []string, limit int) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := likeAny(d.Db.WithContext(ctx), "name", terms).
		Order("id ASC").
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

func (u *Users) SearchByNickname(ctx context.Context, terms []string, limit int) ([]*models.User, error) {
	var users []*models.User
	err := likeAny(u.Db.WithContext(ctx), "nickname", terms).
		Order("id ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}
