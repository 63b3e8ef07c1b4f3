package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOkResultIsOk(t *testing.T) {
	r := Ok(42)
	assert.True(t, r.IsOk())
	assert.False(t, r.IsError())
	assert.Equal(t, 42, r.Value())
	assert.Nil(t, r.Error())
}

func TestErrResultIsError(t *testing.T) {
	r := Err[int](NewError(DeviceNotFound, "gone"))
	assert.False(t, r.IsOk())
	assert.True(t, r.IsError())
	assert.Equal(t, 0, r.Value())
	require.NotNil(t, r.Error())
	assert.Equal(t, DeviceNotFound, r.Error().Code)
}

func TestErrWithNilErrorStaysFailed(t *testing.T) {
	r := Err[int](nil)
	assert.True(t, r.IsError())
	assert.Equal(t, SystemError, r.Error().Code)
}

func TestErrfConvenienceConstructor(t *testing.T) {
	r := Errf[string](InvalidArgument, "bad value")
	assert.True(t, r.IsError())
	assert.Equal(t, InvalidArgument, r.Error().Code)
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, 5, Ok(5).ValueOr(9))
	assert.Equal(t, 9, Err[int](NewError(SystemError, "")).ValueOr(9))
}

func TestIntoValue(t *testing.T) {
	v, ok := Ok("hi").IntoValue()
	assert.True(t, ok)
	assert.Equal(t, "hi", v)

	v, ok = Err[string](NewError(SystemError, "")).IntoValue()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestAsErrorBridgesToIdiomaticError(t *testing.T) {
	v, err := Ok(7).AsError()
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = Err[int](NewError(Timeout, "slow")).AsError()
	assert.Error(t, err)
}

func TestMapResultTransformsValue(t *testing.T) {
	r := MapResult(Ok(3), func(v int) string { return "n=3" })
	assert.True(t, r.IsOk())
	assert.Equal(t, "n=3", r.Value())
}

func TestMapResultPassesErrorThrough(t *testing.T) {
	r := MapResult(Err[int](NewError(Timeout, "slow")), func(v int) string { return "unused" })
	assert.True(t, r.IsError())
	assert.Equal(t, Timeout, r.Error().Code)
}

func TestResultVoidConstructors(t *testing.T) {
	assert.True(t, OkVoid().IsOk())
	assert.True(t, ErrVoid(NewError(SystemError, "boom")).IsError())
}
