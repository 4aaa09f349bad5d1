package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata rides
// along as a structpb.Struct detail so FromGRPCError can restore it.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) > 0 {
		if withDetails, detailErr := st.WithDetails(metaToStruct(customErr.Meta)); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError converts a gRPC error back to our error type
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if details, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = details.AsMap()
			break
		}
	}

	return customErr
}

func metaToStruct(meta map[string]any) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(meta))
	for k, v := range meta {
		fields[k] = toValue(v)
	}
	return &structpb.Struct{Fields: fields}
}

func toValue(v any) *structpb.Value {
	switch typed := v.(type) {
	case []string:
		list := make([]any, len(typed))
		for i, s := range typed {
			list[i] = s
		}
		v = list
	case map[string][]string:
		m := make(map[string]any, len(typed))
		for k, items := range typed {
			m[k] = toValue(items).AsInterface()
		}
		v = m
	}

	value, err := structpb.NewValue(v)
	if err != nil {
		return structpb.NewStringValue(fmt.Sprint(v))
	}
	return value
}
