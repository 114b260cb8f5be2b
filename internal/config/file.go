package config

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	apperrors "github.com/agbru/numlist/internal/errors"
)

// loadFile reads the config file at path. A missing file yields a nil viper
// and no error.
func loadFile(fsys afero.Fs, path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, apperrors.NewConfigError("read config %s: %v", path, err)
	}
	return v, nil
}

// applyFileOverrides applies values from config.ConfigFile to every setting
// whose flag was not given on the command line.
func applyFileOverrides(config *AppConfig, flags *flag.FlagSet, fsys afero.Fs) error {
	if config.ConfigFile == "" {
		return nil
	}
	v, err := loadFile(fsys, config.ConfigFile)
	if err != nil || v == nil {
		return err
	}
	for _, s := range settings {
		if isFlagSetAny(flags, s.flags...) || !v.IsSet(s.fileKey) {
			continue
		}
		s.apply(config, v.GetString(s.fileKey))
	}
	return nil
}
