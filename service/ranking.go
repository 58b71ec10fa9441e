package service

import (
	"sort"

	"zhihuer/models"
	"zhihuer/types"
)

// 排序逻辑全部是输入到输出的纯函数，数据加载在外面，
// 保证相同输入得到相同顺序。

// activeUserStat 单个作者在某话题下的活跃度
type activeUserStat struct {
	UserID     uint64
	AnswerNums int64
	VoteNums   int64
}

// rankActiveUsers 按作者聚合回答数和获赞数。
// 回答数降序，平手看获赞数降序，再平手按用户ID升序保证确定性。
func rankActiveUsers(answers []*models.Answer, votesByAnswer map[uint64]int64, limit int) []activeUserStat {
	byAuthor := make(map[uint64]*activeUserStat)
	for _, a := range answers {
		stat, ok := byAuthor[a.AuthorID]
		if !ok {
			stat = &activeUserStat{UserID: a.AuthorID}
			byAuthor[a.AuthorID] = stat
		}
		stat.AnswerNums++
		stat.VoteNums += votesByAnswer[a.ID]
	}

	stats := make([]activeUserStat, 0, len(byAuthor))
	for _, s := range byAuthor {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].AnswerNums != stats[j].AnswerNums {
			return stats[i].AnswerNums > stats[j].AnswerNums
		}
		if stats[i].VoteNums != stats[j].VoteNums {
			return stats[i].VoteNums > stats[j].VoteNums
		}
		return stats[i].UserID < stats[j].UserID
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// rankAnswersByVotes 按获赞数降序，平手保持传入顺序
func rankAnswersByVotes(answers []*models.Answer, votesByAnswer map[uint64]int64) []*models.Answer {
	ranked := make([]*models.Answer, len(answers))
	copy(ranked, answers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return votesByAnswer[ranked[i].ID] > votesByAnswer[ranked[j].ID]
	})
	return ranked
}

// idCount 实体ID与其计数
type idCount struct {
	ID    uint64
	Count int64
}

// topicBriefs 按榜单顺序补全话题信息，榜单里查不到实体的ID跳过
func topicBriefs(top []idCount, topics map[uint64]*models.Topic) []types.TopicBrief {
	result := make([]types.TopicBrief, 0, len(top))
	for _, p := range top {
		t, ok := topics[p.ID]
		if !ok {
			continue
		}
		result = append(result, types.TopicBrief{
			ID:           t.ID,
			Name:         t.Name,
			Description:  t.Description,
			Image:        t.Image,
			FollowerNums: p.Count,
		})
	}
	return result
}

// questionBriefs 按榜单顺序补全问题信息
func questionBriefs(top []idCount, questions map[uint64]*models.Question) []types.QuestionBrief {
	result := make([]types.QuestionBrief, 0, len(top))
	for _, p := range top {
		q, ok := questions[p.ID]
		if !ok {
			continue
		}
		result = append(result, types.QuestionBrief{
			ID:       q.ID,
			Title:    q.Title,
			ReadNums: q.ReadNums,
		})
	}
	return result
}

// topIDsByCount 计数降序取前N，平手按ID升序
func topIDsByCount(pairs []idCount, limit int) []idCount {
	ranked := make([]idCount, len(pairs))
	copy(ranked, pairs)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ID < ranked[j].ID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
