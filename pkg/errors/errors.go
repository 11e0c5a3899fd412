// Package errors 提供统一的错误处理框架
package errors

import (
	"errors"
	"fmt"
)

// Code 错误码
type Code string

const (
	// 通用错误码
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// 排班引擎相关：全部为致命的配置/输入错误，不重试、不回溯
	CodeContradictoryPreference Code = "CONTRADICTORY_PREFERENCE"
	CodeOverHatedDay            Code = "OVER_HATED_DAY"
	CodeOverWantedDay           Code = "OVER_WANTED_DAY"
	CodeRoleConflict            Code = "ROLE_CONFLICT"
	CodeBothJunior              Code = "BOTH_JUNIOR"
	CodeInsufficientCapacity    Code = "INSUFFICIENT_CAPACITY"
	CodeNoEligibleCandidate     Code = "NO_ELIGIBLE_CANDIDATE"

	// 数据相关
	CodeDatabaseError Code = "DATABASE_ERROR"
)

// AppError 应用错误
type AppError struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Details string                 `json:"details,omitempty"`
	Cause   error                  `json:"-"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails 添加详细信息
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithCause 添加原因
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithField 添加字段
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// New 创建新错误
func New(code Code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(err error, code Code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is 检查错误是否为特定类型
func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode 获取错误码
func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// InvalidInput 创建输入无效错误
func InvalidInput(field, reason string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("字段 '%s' 无效: %s", field, reason))
}

// ContradictoryPreference 某人同时想要并讨厌同一天
func ContradictoryPreference(name string, day int) *AppError {
	return New(CodeContradictoryPreference,
		fmt.Sprintf("%s 同时想要并讨厌第 %d 天", name, day)).
		WithField("name", name).
		WithField("day", day)
}

// OverHatedDay 讨厌某天的人太多，剩余候选人不足两人
func OverHatedDay(day int, haters []string) *AppError {
	return New(CodeOverHatedDay,
		fmt.Sprintf("讨厌第 %d 天的人太多: %v", day, haters)).
		WithField("day", day).
		WithField("haters", haters)
}

// OverWantedDay 想要某天的人超过两人
func OverWantedDay(day int, wanters []string) *AppError {
	return New(CodeOverWantedDay,
		fmt.Sprintf("想要第 %d 天的人超过两人: %v", day, wanters)).
		WithField("day", day).
		WithField("wanters", wanters)
}

// RoleConflict 同一天的两人角色互斥
func RoleConflict(day int, names []string, role string) *AppError {
	return New(CodeRoleConflict,
		fmt.Sprintf("第 %d 天的两人角色冲突（都是 %s）: %v", day, role, names)).
		WithField("day", day).
		WithField("names", names).
		WithField("role", role)
}

// BothJunior 两个不能担任主值的人被排到同一天
func BothJunior(day int, names []string) *AppError {
	return New(CodeBothJunior,
		fmt.Sprintf("第 %d 天的两人都不能担任主值: %v", day, names)).
		WithField("day", day).
		WithField("names", names)
}

// InsufficientCapacity 配额无法从剩余空位中满足
func InsufficientCapacity(name, category string, want, open int) *AppError {
	return New(CodeInsufficientCapacity,
		fmt.Sprintf("%s 想要 %d 个%s班，但只剩 %d 个空位", name, want, category, open)).
		WithField("name", name).
		WithField("category", category).
		WithField("want", want).
		WithField("open", open)
}

// NoEligibleCandidate 贪心阶段找不到合法的值班人
func NoEligibleCandidate(day int, candidates []string) *AppError {
	return New(CodeNoEligibleCandidate,
		fmt.Sprintf("第 %d 天找不到合适的值班人，候选列表已用尽: %v", day, candidates)).
		WithField("day", day).
		WithField("candidates", candidates)
}
