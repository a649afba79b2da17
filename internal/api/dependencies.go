package api

import (
	"os"
	"time"

	"fundforge/platform/internal/common"
	"fundforge/platform/internal/db"
	"fundforge/platform/internal/db/repositories"
	"fundforge/platform/internal/services"

	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Unsubscribes *repositories.UnsubscribeRepository
	Reminders    *repositories.ReminderRepository
	Users        *repositories.UserRepositoryGORM
	Rewards      *repositories.RewardRepository
}

type Services struct {
	Cache         common.CacheInterface
	Session       *common.SessionService
	MailQueue     *common.MailQueueService
	Subscriptions *services.SubscriptionService
	Reminders     *services.ReminderService
	Rewards       *services.RewardService
	User          *services.UserService
	Account       *services.AccountService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Redis    *redis.Client
}

func InitDependencies() (*Dependencies, error) {
	repos := &Repositories{
		Unsubscribes: repositories.NewUnsubscribeRepository(db.DB),
		Reminders:    repositories.NewReminderRepository(db.DB),
		Users:        repositories.NewUserRepositoryGORM(db.PgDB),
		Rewards:      repositories.NewRewardRepository(db.PgDB),
	}

	redisClient := common.NewRedisClient()

	cacheSvc := common.NewCacheService(60, 600)
	sessionSvc := common.NewSessionService(redisClient, 24*time.Hour)
	mailQueueSvc := common.NewMailQueueService(redisClient)

	subscriptionSvc := services.NewSubscriptionService(repos.Unsubscribes)
	reminderSvc := services.NewReminderService(repos.Reminders, cacheSvc)
	rewardSvc := services.NewRewardService(repos.Rewards)
	userSvc := services.NewUserService(repos.Users, subscriptionSvc, reminderSvc)

	secret := []byte(os.Getenv("SESSION_SECRET"))
	accountSvc := services.NewAccountService(repos.Users, secret, 30*24*time.Hour)

	svcs := &Services{
		Cache:         cacheSvc,
		Session:       sessionSvc,
		MailQueue:     mailQueueSvc,
		Subscriptions: subscriptionSvc,
		Reminders:     reminderSvc,
		Rewards:       rewardSvc,
		User:          userSvc,
		Account:       accountSvc,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Redis:    redisClient,
	}, nil
}
