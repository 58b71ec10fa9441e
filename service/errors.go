package service

import "errors"

// 读路径上空结果不是错误，下面这些才是:
// 要么主体不存在，要么调用方传了契约之外的参数。
var (
	ErrNotFound           = errors.New("记录不存在")
	ErrUnknownSort        = errors.New("未知的排序方式")
	ErrUnknownFilter      = errors.New("未知的过滤方式")
	ErrUnknownKind        = errors.New("未知的搜索类型")
	ErrUnknownInteraction = errors.New("未知的交互类型")
	ErrSelfFollow         = errors.New("不能关注自己")
	ErrKeywordTooLong     = errors.New("关键词过长")
	ErrUsernameTaken      = errors.New("用户名已被占用")
	ErrNotOwner           = errors.New("只有作者本人能操作")
	ErrBadCredentials     = errors.New("用户名或密码错误")
)
