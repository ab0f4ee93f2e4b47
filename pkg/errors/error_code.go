// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package errors

// Codes share the meta.code space of the response envelope with rest.CodeSuccess.
const (
	// caller mistakes
	RequestParameterInvalid = 4001
	RequestDataExists       = 4002
	AuthFailed              = 4003
	RequestDataNotExisted   = 4004
	InvalidOperation        = 4016
	InvalidArgument         = 4017

	InternalError      = 5000
	ServiceUnavailable = 5003

	CodeInitializeError = 7001

	// the compute backend failed or answered with a non-2xx status
	CodeRemoteServiceError = 8001
)
