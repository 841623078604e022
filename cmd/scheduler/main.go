package main

import (
	"context"
	"encoding/json"
	"log"

	"newsreel/internal/platform"
	"newsreel/models"
	"newsreel/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Message for scheduling daily jobs
type ProjectCreatedMessage struct {
	ProjectID    uint `json:"project_id"`
	VideosPerDay int  `json:"videos_per_day"`
}

const projectCreatedChannel = "project_created"

func main() {
	platform.LoadEnv()

	db, err := platform.NewDBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	rdb := platform.NewRedisClient()
	ctx := context.Background()

	c := cron.New()
	c.Start()
	defer c.Stop()

	// Re-schedule active projects that existed before this process
	var active []models.Project
	if err := db.Where("is_active = ?", true).Find(&active).Error; err != nil {
		log.Printf("Error loading active projects: %v", err)
	}
	for _, project := range active {
		scheduleProject(ctx, db, rdb, c, project.ID, project.VideosPerDay)
	}

	// Listen for new projects and add cron jobs for them
	go listenForNewProjects(ctx, db, rdb, c)

	log.Println("Scheduler started, waiting for messages...")
	select {}
}

// listenForNewProjects subscribes to `project_created` and adds cron
// jobs. This uses Pub/Sub, so only run one instance of this service to
// avoid scheduling duplicate cron jobs.
func listenForNewProjects(ctx context.Context, db *gorm.DB, rdb *redis.Client, c *cron.Cron) {
	pubsub := rdb.Subscribe(ctx, projectCreatedChannel)
	defer pubsub.Close()
	ch := pubsub.Channel()

	log.Println("Scheduler listening for new projects...")

	for msg := range ch {
		var message ProjectCreatedMessage
		if err := json.Unmarshal([]byte(msg.Payload), &message); err != nil {
			log.Printf("Error unmarshalling %s message: %v", projectCreatedChannel, err)
			continue
		}

		log.Printf("Received new project %d, scheduling %d videos per day", message.ProjectID, message.VideosPerDay)
		scheduleProject(ctx, db, rdb, c, message.ProjectID, message.VideosPerDay)
	}
}

// scheduleProject adds a daily cron job that creates pending scripts
// for a project and queues them for headline generation.
func scheduleProject(ctx context.Context, db *gorm.DB, rdb *redis.Client, c *cron.Cron, projectID uint, videosPerDay int) {
	_, err := c.AddFunc("@daily", func() {
		// Skip projects that were deactivated since scheduling.
		var project models.Project
		if err := db.First(&project, projectID).Error; err != nil || !project.IsActive {
			return
		}

		log.Printf("Running daily job for project %d: queuing %d scripts", projectID, videosPerDay)

		for i := 0; i < videosPerDay; i++ {
			script := models.Script{
				ProjectID: projectID,
				Status:    "pending",
			}
			if err := db.Create(&script).Error; err != nil {
				log.Printf("Error creating daily pending script record: %v", err)
				continue
			}

			task := tasks.NewScriptTask(script.ID)
			payload, err := json.Marshal(task)
			if err != nil {
				log.Printf("Error marshalling daily script task: %v", err)
				continue
			}

			if err := rdb.LPush(ctx, tasks.QueueHeadline, payload).Err(); err != nil {
				log.Printf("Error pushing daily task to queue %s: %v", tasks.QueueHeadline, err)
			}
		}
	})
	if err != nil {
		log.Printf("Error scheduling cron job for project %d: %v", projectID, err)
	}
}
