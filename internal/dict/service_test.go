package dict_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/readafter/internal/dict"
	"github.com/f3rmion/readafter/internal/store/memory"
)

type failingSource struct{ calls int }

func (f *failingSource) Load(dict.Category) ([]string, error) {
	f.calls++
	return nil, errors.New("resource missing")
}

type failingStore struct{ memory.Store }

func (*failingStore) Get(context.Context, dict.Category) ([]string, bool, error) {
	return nil, false, errors.New("corrupt override")
}

func TestService_ProperExpandsPauseMarks(t *testing.T) {
	svc := dict.NewService(dict.StaticSource{
		dict.Proper: {"德、智、体", "长江"},
	}, nil)

	words := svc.Get(context.Background(), dict.Proper)

	assert.Equal(t, []string{"德、智、体", "德智体", "长江"}, words)
	assert.True(t, svc.Contains(context.Background(), dict.Proper, "德智体"))
	assert.True(t, svc.Contains(context.Background(), dict.Proper, "德、智、体"))
}

func TestService_PauseProperIsNotExpanded(t *testing.T) {
	svc := dict.NewService(dict.StaticSource{
		dict.PauseProper: {"投、编、评"},
	}, nil)

	assert.Equal(t, []string{"投、编、评"}, svc.Get(context.Background(), dict.PauseProper))
}

func TestService_MissingDefaultDegradesToEmpty(t *testing.T) {
	src := &failingSource{}
	svc := dict.NewService(src, nil)

	assert.Empty(t, svc.Get(context.Background(), dict.Number))
	assert.Empty(t, svc.Get(context.Background(), dict.Number))
	assert.Equal(t, 1, src.calls, "failed loads are cached as empty")
}

func TestService_OverrideWinsOverDefault(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := dict.NewService(dict.StaticSource{dict.NoSplitAfter: {"的"}}, store)

	require.NoError(t, svc.Save(ctx, dict.NoSplitAfter, []string{"了", "了", "着"}))

	assert.Equal(t, []string{"了", "着"}, svc.Get(ctx, dict.NoSplitAfter))
	assert.Equal(t, []string{"的"}, svc.Defaults(dict.NoSplitAfter))
}

func TestService_UnreadableOverrideFallsBack(t *testing.T) {
	svc := dict.NewService(dict.StaticSource{dict.Number: {"一"}}, &failingStore{})

	assert.Equal(t, []string{"一"}, svc.Get(context.Background(), dict.Number))
}

func TestService_AddRemoveReset(t *testing.T) {
	ctx := context.Background()
	svc := dict.NewService(dict.StaticSource{dict.Number: {"一", "二"}}, memory.New())

	require.NoError(t, svc.Add(ctx, dict.Number, "三", "一"))
	assert.Equal(t, []string{"一", "二", "三"}, svc.Raw(ctx, dict.Number))

	require.NoError(t, svc.Remove(ctx, dict.Number, "二"))
	assert.Equal(t, []string{"一", "三"}, svc.Raw(ctx, dict.Number))

	require.NoError(t, svc.ResetAll(ctx))
	assert.Equal(t, []string{"一", "二"}, svc.Raw(ctx, dict.Number))
}

func TestService_SaveRejectsUnknownCategory(t *testing.T) {
	svc := dict.NewService(nil, memory.New())

	err := svc.Save(context.Background(), dict.Category("bogus"), nil)
	assert.ErrorIs(t, err, dict.ErrUnknownCategory)
}

func TestService_SaveWithoutStore(t *testing.T) {
	svc := dict.NewService(nil, nil)

	assert.Error(t, svc.Save(context.Background(), dict.Number, []string{"一"}))
	assert.NoError(t, svc.Reset(context.Background(), dict.Number))
}

func TestService_ConcurrentFirstLoadConverges(t *testing.T) {
	svc := dict.NewService(dict.StaticSource{dict.Number: {"一", "二"}}, nil)

	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Get(context.Background(), dict.Number)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, []string{"一", "二"}, r)
	}
}

func TestService_MatchPrefix(t *testing.T) {
	ctx := context.Background()
	svc := dict.NewService(dict.StaticSource{
		dict.Proper:      {"中华", "中华人民共和国", "德、智、体"},
		dict.PauseProper: {"投、编、评"},
	}, nil)

	tests := []struct {
		name   string
		text   string
		word   string
		length int
		ok     bool
	}{
		{"longest wins", "中华人民共和国成立", "中华人民共和国", 7, true},
		{"shorter entry", "中华文化", "中华", 2, true},
		{"stripped form of proper", "德智体全面发展", "德、智、体", 3, true},
		{"pause proper literal", "投、编、评一体化", "投、编、评", 5, true},
		{"pause proper stripped", "投编评一体化", "投、编、评", 3, true},
		{"no match", "今天", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := svc.MatchPrefix(ctx, dict.Proper, tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.length, m.Length)
			assert.Equal(t, tt.word, m.Word)
		})
	}
}

func TestEmbeddedSource_LoadsEveryCategory(t *testing.T) {
	for _, c := range dict.AllCategories() {
		words, err := dict.EmbeddedSource{}.Load(c)
		require.NoError(t, err, c)
		assert.NotEmpty(t, words, c)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := dict.ParseCategory("no_number_before")
	require.NoError(t, err)
	assert.Equal(t, dict.NoNumberBefore, c)

	_, err = dict.ParseCategory("nouns")
	assert.ErrorIs(t, err, dict.ErrUnknownCategory)
}
