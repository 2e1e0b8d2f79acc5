package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// FromWorkflow returns the global logger tagged with the workflow execution of ctx.
// Logging from workflow code is not replay safe; callers guard with workflow.IsReplaying.
func FromWorkflow(ctx workflow.Context) *zap.Logger {
	info := workflow.GetInfo(ctx)
	if info == nil {
		return log
	}
	return log.With(
		zap.String("workflow_type", info.WorkflowType.Name),
		zap.String("workflow_id", info.WorkflowExecution.ID),
		zap.String("run_id", info.WorkflowExecution.RunID),
		zap.String("task_queue", info.TaskQueueName),
	)
}

// InfoWf logs an info message tagged with the workflow execution, skipped on replay
func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	FromWorkflow(ctx).Info(msg, fields...)
}

// WarnWf logs a warning tagged with the workflow execution, skipped on replay
func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	FromWorkflow(ctx).Warn(msg, fields...)
}

// ErrorWf logs an error tagged with the workflow execution, skipped on replay
func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	FromWorkflow(ctx).Error(errorMessage(err), fields...)
}
