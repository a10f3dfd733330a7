package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
	"github.com/x-xyz/nftmint/service/redis"
	redismocks "github.com/x-xyz/nftmint/service/redis/mocks"
)

const wallet = domain.Address("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

func TestLocalNonceRepo(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	r := NewLocalNonceRepo(1)

	_, err := r.Get(c, wallet)
	req.ErrorIs(err, domain.ErrNotFound)

	req.NoError(r.Set(c, wallet, "n1", time.Minute))
	got, err := r.Get(c, wallet.ToLower())
	req.NoError(err)
	req.Equal("n1", got)

	ok, err := r.Del(c, wallet)
	req.NoError(err)
	req.True(ok)
	ok, err = r.Del(c, wallet)
	req.NoError(err)
	req.False(ok)

	req.ErrorIs(r.Set(c, wallet, "n2", 0), domain.ErrBadParamInput)
}

func TestRedisNonceRepo(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	rs := redismocks.NewService(t)
	r := NewRedisNonceRepo(rs)
	key := "authnonce:0x70997970c51812dc3a010c7d01b50e0d17dc79c8"

	rs.On("Set", mock.Anything, key, []byte("n1"), 5*time.Minute).Return(nil).Once()
	req.NoError(r.Set(c, wallet, "n1", 5*time.Minute))

	rs.On("Get", mock.Anything, key).Return([]byte("n1"), nil).Once()
	got, err := r.Get(c, wallet)
	req.NoError(err)
	req.Equal("n1", got)

	rs.On("Get", mock.Anything, key).Return(nil, redis.ErrNotFound).Once()
	_, err = r.Get(c, wallet)
	req.ErrorIs(err, domain.ErrNotFound)

	rs.On("Del", mock.Anything, key).Return(1, nil).Once()
	ok, err := r.Del(c, wallet)
	req.NoError(err)
	req.True(ok)

	rs.On("Del", mock.Anything, key).Return(0, nil).Once()
	ok, err = r.Del(c, wallet)
	req.NoError(err)
	req.False(ok)

	rs.On("Del", mock.Anything, key).Return(0, errors.New("conn refused")).Once()
	_, err = r.Del(c, wallet)
	req.Error(err)
}
