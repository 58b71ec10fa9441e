package types

// ToggleResult 开关型交互的结果: true=本次新增, false=本次删除
type ToggleResult struct {
	Added bool `json:"added"`
}
