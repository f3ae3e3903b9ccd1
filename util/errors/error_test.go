package errors

import (
	"encoding/json"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {

	t.Run("toErr", func(t *testing.T) {

		cases := []struct {
			desc     string
			reason   any
			expected []error
		}{
			{desc: "single_error", reason: fmt.Errorf("single error"), expected: []error{fmt.Errorf("single error")}},
			{desc: "many_errors", reason: []error{fmt.Errorf("err1"), nil, fmt.Errorf("err2")}, expected: []error{fmt.Errorf("err1"), fmt.Errorf("err2")}},
			{desc: "many_parsed_errors", reason: []*Error{{reasons: []error{fmt.Errorf("err1")}}, {reasons: []error{fmt.Errorf("err1")}}}, expected: []error{&Error{reasons: []error{fmt.Errorf("err1")}}, &Error{reasons: []error{fmt.Errorf("err1")}}}},
			{
				desc: "any_slice",
				reason: []any{
					fmt.Errorf("err1"),
					"err2",
					nil,
					&Error{reasons: []error{fmt.Errorf("err3")}},
					[]error{fmt.Errorf("err4"), fmt.Errorf("err5")},
				},
				expected: []error{
					fmt.Errorf("err1"),
					Reason{reason: "err2"},
					&Error{reasons: []error{fmt.Errorf("err3")}},
					fmt.Errorf("err4"),
					fmt.Errorf("err5"),
				},
			},
		}

		for _, c := range cases {
			t.Run(c.desc, func(t *testing.T) {
				errs := toErr(c.reason)
				assert.Equal(t, c.expected, errs)
			})
		}
	})

	t.Run("New", func(t *testing.T) {
		err := New("reason").(*Error)
		assert.Equal(t, []error{Reason{reason: "reason"}}, err.reasons)
		assert.Len(t, err.callers, 3)
	})

	t.Run("NewSkip", func(t *testing.T) {
		err := NewSkip("reason", 3).(*Error)
		assert.Equal(t, []error{Reason{reason: "reason"}}, err.reasons)
		assert.Len(t, err.callers, 2)
	})

	t.Run("New_nil", func(t *testing.T) {
		assert.NoError(t, New(nil))
		assert.NoError(t, NewSkip(nil, 3))
	})

	t.Run("NewSkip_already_Error", func(t *testing.T) {
		err := New("reason")
		err2 := New(err)
		assert.Same(t, err, err2)
	})

	t.Run("Accessors", func(t *testing.T) {
		err := New([]error{fmt.Errorf("a"), fmt.Errorf("b")}).(*Error)
		assert.Equal(t, 2, err.Len())
		assert.Equal(t, err.callers, err.Callers())
		assert.Equal(t, err.reasons, err.Unwrap())
	})

	t.Run("Is", func(t *testing.T) {
		wrapped := fmt.Errorf("wrapped")
		err := New([]error{fmt.Errorf("a"), wrapped})
		assert.ErrorIs(t, err, wrapped)
	})

	t.Run("Error", func(t *testing.T) {
		cases := []struct {
			desc     string
			expected string
			reasons  []error
		}{
			{desc: "single", reasons: []error{fmt.Errorf("reason")}, expected: "reason"},
			{desc: "many", reasons: []error{fmt.Errorf("err1"), nil, fmt.Errorf("err2")}, expected: "err1\n<nil>\nerr2"},
			{desc: "empty_slice", reasons: []error{}, expected: "goyave.dev/mailaddr/util/errors.Error: the Error doesn't wrap any reason (empty reasons slice)"},
			{desc: "nil_slice", reasons: []error{nil}, expected: "<nil>"},
		}

		for _, c := range cases {
			t.Run(c.desc, func(t *testing.T) {
				err := &Error{reasons: c.reasons}
				assert.Equal(t, c.expected, err.Error())
			})
		}
	})

	t.Run("String", func(t *testing.T) {
		suberror := New("suberror")

		single := New("err1").(*Error)
		assert.Regexp(t, regexp.MustCompile(`^err1\ngoyave\.dev/mailaddr/util/errors\.TestErrors\.func\d+\n\t.*/util/errors/error_test\.go:\d+\n`), single.String())

		empty := New("").(*Error)
		empty.reasons = []error{}
		assert.Regexp(t, regexp.MustCompile(`^goyave\.dev/mailaddr/util/errors\.Error: the Error doesn't wrap any reason \(empty reasons slice\)\n`), empty.String())

		alreadyError := New([]error{suberror}).(*Error)
		assert.Equal(t, suberror.(*Error).String(), alreadyError.String())

		many := New([]any{fmt.Errorf("err1"), "err2", suberror}).(*Error)
		str := many.String()
		assert.Regexp(t, regexp.MustCompile(`^err1\n`), str)
		assert.Contains(t, str, "\n\nerr2\n")
		assert.Contains(t, str, "\n\n"+suberror.(*Error).String())

		withNil := &Error{reasons: []error{nil, nil}, callers: single.callers}
		assert.Regexp(t, regexp.MustCompile(`^<nil>\n(.|\n)*\n\n<nil>\n`), withNil.String())
	})

	t.Run("FileLine", func(t *testing.T) {
		err := New("").(*Error)
		assert.Regexp(t, regexp.MustCompile(`/util/errors/error_test\.go:\d+$`), err.FileLine())

		// Skip more frames than necessary to have empty callers slice
		err = NewSkip("", 5).(*Error)
		assert.Equal(t, "[unknown file line]", err.FileLine())
	})

	t.Run("JSON", func(t *testing.T) {
		emptySliceErr := New("").(*Error)
		emptySliceErr.reasons = []error{}

		suberror := New("suberror")
		manySuberror := New([]error{fmt.Errorf("suberror1"), fmt.Errorf("suberror2")})

		cases := []struct {
			err         *Error
			desc        string
			expected    string
			expectedErr bool
		}{
			{desc: "empty_slice", err: emptySliceErr, expected: `"goyave.dev/mailaddr/util/errors.Error: the Error doesn't wrap any reason (empty reasons slice)"`},
			{desc: "single", err: New(fmt.Errorf("error message")).(*Error), expected: `"error message"`},
			{desc: "single_marshaler", err: New(map[string]any{"key": "value"}).(*Error), expected: `{"key":"value"}`},
			{desc: "many", err: New([]any{nil, "ah", map[string]any{"key": "value"}, fmt.Errorf("error message"), suberror, manySuberror}).(*Error), expected: `["ah",{"key":"value"},"error message","suberror",["suberror1","suberror2"]]`},
			{desc: "marshal_unsupported_type", err: New(make(chan struct{})).(*Error), expectedErr: true},
			{desc: "marshal_many_unsupported_type", err: New([]any{"a", make(chan struct{})}).(*Error), expectedErr: true},
		}

		for _, c := range cases {
			t.Run(c.desc, func(t *testing.T) {
				res, err := json.Marshal(c.err)
				if c.expectedErr {
					require.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, c.expected, string(res))
			})
		}
	})

	t.Run("Reason", func(t *testing.T) {
		reason := Reason{reason: map[string]any{"key": "value"}}
		assert.Equal(t, map[string]any{"key": "value"}, reason.Value())
		assert.Equal(t, "map[key:value]", reason.Error())

		res, err := reason.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"key":"value"}`, string(res))
	})

	t.Run("Errorf", func(t *testing.T) {
		wrappedErr := fmt.Errorf("wrapped error")
		err := Errorf("reason %d %s %w", 1, "msg", wrappedErr).(*Error)
		assert.Equal(t, []error{fmt.Errorf("reason %d %s %w", 1, "msg", wrappedErr)}, err.reasons)
		assert.Len(t, err.callers, 3)
		assert.ErrorIs(t, err, wrappedErr)
	})
}
