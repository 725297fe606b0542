package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGormUnsupportedDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "oracle"})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnsupportedDriver))
}

func TestNewGormSQLite(t *testing.T) {
	db, err := NewGorm(Opts{Driver: "sqlite", DSN: "file:gorm_test?mode=memory&cache=shared", LogLevel: "silent"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	require.NoError(t, sqlDB.Ping())
	require.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestNormalizeMySQLDSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		user string
		pass string
		want string
	}{
		{
			name: "empty",
			in:   "  ",
			want: "",
		},
		{
			name: "native dsn untouched",
			in:   "root:pw@tcp(127.0.0.1:3306)/users?parseTime=true",
			want: "root:pw@tcp(127.0.0.1:3306)/users?parseTime=true",
		},
		{
			name: "jdbc url",
			in:   "jdbc:mysql://db:3306/users?useSSL=false&serverTimezone=UTC",
			user: "app",
			pass: "secret",
			want: "app:secret@tcp(db:3306)/users?charset=utf8mb4&loc=UTC&parseTime=true&tls=false",
		},
		{
			name: "url credentials and encoding",
			in:   "mysql://u:p@db:3306/users?characterEncoding=utf8&useUnicode=true",
			want: "u:p@tcp(db:3306)/users?charset=utf8&parseTime=true",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, normalizeMySQLDSN(tt.in, tt.user, tt.pass))
		})
	}
}
