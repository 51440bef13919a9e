package clickhouse

import (
	"fmt"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/collider-backend/internal/model"
)

func targetRows(chain model.Chain, n int) []model.TargetAddress {
	rows := make([]model.TargetAddress, 0, n)
	for i := range n {
		rows = append(rows, model.TargetAddress{Chain: chain, Address: fmt.Sprintf("0x%040x", i+1)})
	}
	return rows
}

func (s *RepositorySuite) TestInsertAndCountAddresses() {
	s.metrics.EXPECT().Observe("insert_addresses", model.ETH, gomock.Nil(), gomock.Any()).Times(2)
	s.metrics.EXPECT().Observe("count_addresses", gomock.Any(), gomock.Nil(), gomock.Any()).Times(2)

	rows := targetRows(model.ETH, 5)
	s.Require().NoError(s.repo.InsertAddresses(s.testCtx, rows))
	// re-inserted rows collapse under FINAL
	s.Require().NoError(s.repo.InsertAddresses(s.testCtx, rows[:2]))

	total, err := s.repo.CountAddresses(s.testCtx, model.ETH)
	s.Require().NoError(err)
	s.Equal(uint64(5), total)

	total, err = s.repo.CountAddresses(s.testCtx, model.BTC)
	s.Require().NoError(err)
	s.Zero(total)
}

func (s *RepositorySuite) TestSourceStreamsAllAddressesInOrder() {
	s.metrics.EXPECT().Observe("insert_addresses", gomock.Any(), gomock.Nil(), gomock.Any()).Times(2)
	s.metrics.EXPECT().Observe("addresses_after", model.ETH, gomock.Nil(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().Observe("count_addresses", model.ETH, gomock.Nil(), gomock.Any()).Times(1)

	rows := targetRows(model.ETH, 7)
	s.Require().NoError(s.repo.InsertAddresses(s.testCtx, rows))
	s.Require().NoError(s.repo.InsertAddresses(s.testCtx, []model.TargetAddress{{Chain: model.BTC, Address: "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"}}))

	src := NewSource(s.repo, model.ETH)

	count, err := src.Count(s.testCtx)
	s.Require().NoError(err)
	s.Equal(uint64(7), count)

	var (
		got     []string
		batches int
	)
	s.Require().NoError(src.Stream(s.testCtx, 3, func(batch []string) error {
		batches++
		s.LessOrEqual(len(batch), 3)
		got = append(got, batch...)
		return nil
	}))

	s.Equal(3, batches)
	s.Len(got, 7)
	for i, row := range rows {
		s.Equal(row.Address, got[i])
	}
}
