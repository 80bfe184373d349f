package exchange

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"money-problem/domain"
)

func TestLoggingService(t *testing.T) {
	var lines [][]interface{}
	logger := log.LoggerFunc(func(keyvals ...interface{}) error {
		lines = append(lines, keyvals)
		return nil
	})
	s := NewLoggingService(logger, NewService(StaticBank(staticRates())))

	_, err := s.Convert(context.Background(), domain.Euros(10), domain.USD)
	require.NoError(t, err)
	_, err = s.Evaluate(context.Background(), []domain.Money{domain.KoreanWons(1)}, domain.EUR)
	require.Error(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, []interface{}{"method", "convert"}, lines[0][:2])
	assert.Equal(t, []interface{}{"method", "evaluate"}, lines[1][:2])
	assert.Equal(t, err, lines[1][len(lines[1])-1])
}

func TestLoggingService_FormatsMoney(t *testing.T) {
	var buf bytes.Buffer
	s := NewLoggingService(log.NewLogfmtLogger(&buf), NewService(StaticBank(staticRates())))

	_, err := s.Convert(context.Background(), domain.Euros(10), domain.USD)
	require.NoError(t, err)
	_, err = s.Evaluate(context.Background(), []domain.Money{domain.Dollars(5), domain.Euros(10)}, domain.USD)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "converted=$12.00")
	assert.Contains(t, buf.String(), "total=$17.00")
}
