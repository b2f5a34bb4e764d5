package docxgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/unidoc/unioffice/common/license"
	"go.uber.org/zap"

	"acts-service-go/internal/pkg/logger"
)

// keyFiles места поиска ключа для локальной разработки
var keyFiles = []string{
	".unidoc.key",
	"../../../.unidoc.key",
}

// SetupLicense загружает metered-ключ UniDoc. Без ключа библиотека работает
// в ограниченном режиме, это не ошибка.
func SetupLicense(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		key = readKeyFile()
	}
	if key == "" {
		logger.Warn("UniDoc license key not found, some features may be limited")
		return nil
	}

	if err := license.SetMeteredKey(key); err != nil {
		return fmt.Errorf("failed to load UniDoc license: %w", err)
	}
	logger.Info("UniDoc license loaded", zap.Int("key_length", len(key)))
	return nil
}

func readKeyFile() string {
	for _, path := range keyFiles {
		data, err := os.ReadFile(path)
		if err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return ""
}
