package main

import (
	"os"

	"github.com/HilmiTuncay/yemek-siparis/config"
	httpapi "github.com/HilmiTuncay/yemek-siparis/internal/api/http"
	"github.com/HilmiTuncay/yemek-siparis/internal/service"
	"github.com/HilmiTuncay/yemek-siparis/internal/storage"
)

func main() {
	config.Load()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewRedisStore(rdb, config.OrderTTL(storage.DefaultOrderTTL))

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter("orders"); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	handler := &httpapi.Handler{
		Orders:        service.NewOrderService(store, store, store, publisher),
		Menus:         service.NewMenuService(store),
		Status:        service.NewStatusService(store),
		Suggestions:   service.NewSuggestionService(store),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	addr := ":" + config.Getenv("PORT", "8080")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
