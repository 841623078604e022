package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"newsreel/models"
	"newsreel/processing"
	"newsreel/srt"
	"newsreel/tasks"

	"gorm.io/gorm"
)

// loadScript unmarshals a task payload and fetches its script row.
func (p *Processor) loadScript(payload string) (tasks.ScriptTaskPayload, *models.Script, error) {
	var task tasks.ScriptTaskPayload
	if err := json.Unmarshal([]byte(payload), &task); err != nil {
		return task, nil, err
	}

	var script models.Script
	if err := p.DB.First(&script, task.ScriptID).Error; err != nil {
		return task, nil, fmt.Errorf("script %d not found: %w", task.ScriptID, err)
	}
	return task, &script, nil
}

// chain enqueues the next stage and records the pending status.
func (p *Processor) chain(ctx context.Context, script *models.Script, task tasks.ScriptTaskPayload, queue, pendingStatus, failStatus string) error {
	if err := p.Enqueue(ctx, queue, task.Next()); err != nil {
		p.DB.Model(script).Update("status", failStatus)
		return err
	}
	p.DB.Model(script).Update("status", pendingStatus)
	return nil
}

// HandleHeadline processes tasks from QueueHeadline.
func (p *Processor) HandleHeadline(ctx context.Context, payload string) error {
	task, script, err := p.loadScript(payload)
	if err != nil {
		return err
	}

	log.Printf("[%s] Processing headline for script %d", task.TaskID, script.ID)

	var project models.Project
	if err := p.DB.First(&project, script.ProjectID).Error; err != nil {
		return err
	}

	p.DB.Model(script).Update("status", "processing_headline")

	// Existing headlines in the project keep the new one unique
	var siblings []models.Script
	p.DB.Where("project_id = ? AND id != ?", script.ProjectID, script.ID).Find(&siblings)
	var existing []string
	for _, s := range siblings {
		if s.Headline != "" {
			existing = append(existing, s.Headline)
		}
	}

	headline, err := p.LLM.GenerateHeadline(ctx, project, existing)
	if err != nil {
		p.DB.Model(script).Update("status", "failed_headline")
		return err
	}

	if err := p.DB.Model(script).Update("headline", headline).Error; err != nil {
		return err
	}
	log.Printf("[%s] Generated headline for script %d: %s", task.TaskID, script.ID, headline)

	return p.chain(ctx, script, task, tasks.QueueOutline, "pending_outline", "failed_queue_outline")
}

// HandleOutline processes tasks from QueueOutline.
func (p *Processor) HandleOutline(ctx context.Context, payload string) error {
	task, script, err := p.loadScript(payload)
	if err != nil {
		return err
	}

	if script.Headline == "" {
		p.DB.Model(script).Update("status", "failed_outline_no_headline")
		return nil // Should not happen in normal flow, but prevent crash
	}

	var project models.Project
	if err := p.DB.First(&project, script.ProjectID).Error; err != nil {
		return err
	}

	p.DB.Model(script).Update("status", "processing_outline")

	points, err := p.LLM.GenerateOutline(ctx, project, script.Headline)
	if err != nil {
		p.DB.Model(script).Update("status", "failed_outline")
		return err
	}

	err = p.DB.Transaction(func(tx *gorm.DB) error {
		for i, pt := range points {
			section := models.Section{
				ScriptID: script.ID,
				Position: i + 1,
				Heading:  pt.Heading,
				Summary:  pt.Summary,
			}
			if err := tx.Create(&section).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		p.DB.Model(script).Update("status", "failed_save_outline")
		return err
	}

	log.Printf("[%s] Generated %d outline sections for script %d", task.TaskID, len(points), script.ID)
	return p.chain(ctx, script, task, tasks.QueueSections, "pending_sections", "failed_queue_sections")
}

// HandleSections processes tasks from QueueSections.
func (p *Processor) HandleSections(ctx context.Context, payload string) error {
	task, script, err := p.loadScript(payload)
	if err != nil {
		return err
	}

	var sections []models.Section
	if err := p.DB.Where("script_id = ?", script.ID).Order("position").Find(&sections).Error; err != nil {
		return err
	}
	if len(sections) == 0 {
		p.DB.Model(script).Update("status", "failed_sections_no_outline")
		return nil
	}

	p.DB.Model(script).Update("status", "processing_sections")

	// Sections build on each other, so they expand in order.
	prior := ""
	for i := range sections {
		body, err := p.LLM.GenerateSectionBody(ctx, script.Headline, sections[i], prior)
		if err != nil {
			p.DB.Model(script).Update("status", "failed_sections")
			return err
		}
		sections[i].Body = body
		if err := p.DB.Model(&sections[i]).Update("body", body).Error; err != nil {
			return err
		}
		prior = processing.AssembleArticle(sections[:i+1])
	}

	article := processing.AssembleArticle(sections)
	if err := p.DB.Model(script).Update("article", article).Error; err != nil {
		return err
	}
	log.Printf("[%s] Assembled article for script %d (%d sections)", task.TaskID, script.ID, len(sections))

	return p.chain(ctx, script, task, tasks.QueueVoiceover, "pending_voiceover", "failed_queue_voiceover")
}

// HandleVoiceover processes tasks from QueueVoiceover.
func (p *Processor) HandleVoiceover(ctx context.Context, payload string) error {
	task, script, err := p.loadScript(payload)
	if err != nil {
		return err
	}

	if script.Article == "" {
		p.DB.Model(script).Update("status", "failed_voiceover_no_article")
		return nil
	}

	p.DB.Model(script).Update("status", "processing_voiceover")

	audio, err := p.Speech.Synthesize(ctx, script.Article)
	if err != nil {
		p.DB.Model(script).Update("status", "failed_voiceover")
		return err
	}

	dir := filepath.Join(p.Cfg.DataDir, "audio")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		p.DB.Model(script).Update("status", "failed_voiceover")
		return err
	}
	audioPath := filepath.Join(dir, fmt.Sprintf("script_%d.mp3", script.ID))
	if err := os.WriteFile(audioPath, audio, 0o644); err != nil {
		p.DB.Model(script).Update("status", "failed_voiceover")
		return err
	}

	if err := p.DB.Model(script).Update("audio_path", audioPath).Error; err != nil {
		return err
	}
	log.Printf("[%s] Synthesized voiceover for script %d (%d bytes)", task.TaskID, script.ID, len(audio))

	return p.chain(ctx, script, task, tasks.QueueTranscript, "pending_transcript", "failed_queue_transcript")
}

// HandleTranscript processes tasks from QueueTranscript.
func (p *Processor) HandleTranscript(ctx context.Context, payload string) error {
	task, script, err := p.loadScript(payload)
	if err != nil {
		return err
	}

	if script.AudioPath == "" {
		p.DB.Model(script).Update("status", "failed_transcript_no_audio")
		return nil
	}

	var project models.Project
	if err := p.DB.First(&project, script.ProjectID).Error; err != nil {
		return err
	}

	p.DB.Model(script).Update("status", "processing_transcript")

	raw, err := p.Speech.Transcribe(ctx, script.AudioPath, project.Language)
	if err != nil {
		p.DB.Model(script).Update("status", "failed_transcript")
		return err
	}

	// Normalize provider output: renumber contiguously, drop malformed
	// blocks, collapse multi-line text.
	track, err := srt.ParseTrack(raw)
	if err != nil {
		p.DB.Model(script).Update("status", "failed_transcript")
		return fmt.Errorf("transcript for script %d unusable: %w", script.ID, err)
	}
	for _, skipped := range track.Skipped {
		log.Printf("[%s] Script %d transcript: %v", task.TaskID, script.ID, skipped)
	}

	if err := p.DB.Model(script).Update("transcript", srt.RenderEntries(track.Entries)).Error; err != nil {
		return err
	}
	log.Printf("[%s] Transcribed script %d (%d entries)", task.TaskID, script.ID, len(track.Entries))

	return p.chain(ctx, script, task, tasks.QueueSegment, "pending_chunks", "failed_queue_chunks")
}

// HandleSegment processes tasks from QueueSegment: parse the
// transcript, group entries into bounded chunks, and enrich each chunk
// with keywords and a summary.
func (p *Processor) HandleSegment(ctx context.Context, payload string) error {
	task, script, err := p.loadScript(payload)
	if err != nil {
		return err
	}

	if script.Transcript == "" {
		p.DB.Model(script).Update("status", "failed_chunks_no_transcript")
		return nil
	}

	p.DB.Model(script).Update("status", "processing_chunks")

	track, err := srt.ParseTrack(script.Transcript)
	if err != nil {
		p.DB.Model(script).Update("status", "failed_chunks")
		return fmt.Errorf("parse transcript for script %d: %w", script.ID, err)
	}

	chunks, err := srt.GroupEntries(track.Entries, p.Cfg.MaxChunkSpanSec)
	if err != nil {
		p.DB.Model(script).Update("status", "failed_chunks")
		return err
	}

	// Enrichment failures degrade to empty annotations, never abort.
	annotated := srt.Annotate(ctx, chunks, p.LLM.ChunkKeywords, p.LLM.ChunkSummary, srt.AnnotateOptions{
		MaxConcurrent: p.Cfg.EnrichMaxConcurrent,
		RatePerMinute: p.Cfg.EnrichRatePerMin,
	})

	err = p.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("script_id = ?", script.ID).Delete(&models.Chunk{}).Error; err != nil {
			return err
		}
		for i, c := range annotated {
			row := models.Chunk{
				ScriptID: script.ID,
				Position: i + 1,
				StartSec: c.Start,
				EndSec:   c.End,
				Text:     c.Text,
				Keywords: c.Keywords,
				Summary:  c.Summary,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		p.DB.Model(script).Update("status", "failed_save_chunks")
		return err
	}

	log.Printf("[%s] Segmented script %d into %d chunks", task.TaskID, script.ID, len(annotated))
	return p.chain(ctx, script, task, tasks.QueueFootage, "pending_footage", "failed_queue_footage")
}

// HandleFootage processes tasks from QueueFootage. Per-chunk search
// failures are non-fatal; a chunk without keywords just gets no clips.
func (p *Processor) HandleFootage(ctx context.Context, payload string) error {
	task, script, err := p.loadScript(payload)
	if err != nil {
		return err
	}

	var chunks []models.Chunk
	if err := p.DB.Where("script_id = ?", script.ID).Order("position").Find(&chunks).Error; err != nil {
		return err
	}
	if len(chunks) == 0 {
		p.DB.Model(script).Update("status", "failed_footage_no_chunks")
		return nil
	}

	p.DB.Model(script).Update("status", "processing_footage")

	matched := 0
	for _, chunk := range chunks {
		if len(chunk.Keywords) == 0 {
			log.Printf("[%s] Chunk %d has no keywords, skipping footage search", task.TaskID, chunk.Position)
			continue
		}

		clips, err := p.Footage.SearchVideos(ctx, chunk.Keywords[0], p.Cfg.ClipsPerChunk)
		if err != nil {
			log.Printf("[%s] Footage search failed for chunk %d: %v", task.TaskID, chunk.Position, err)
			continue
		}

		for _, clip := range clips {
			row := models.Clip{
				ChunkID:      chunk.ID,
				PexelsID:     clip.ID,
				URL:          clip.URL,
				ThumbnailURL: clip.ThumbnailURL,
				DurationSec:  clip.DurationSec,
				Width:        clip.Width,
				Height:       clip.Height,
				Attribution:  clip.Attribution,
			}
			if err := p.DB.Create(&row).Error; err != nil {
				log.Printf("[%s] Error saving clip for chunk %d: %v", task.TaskID, chunk.Position, err)
			}
		}
		matched++
	}

	log.Printf("[%s] Matched footage for %d/%d chunks of script %d", task.TaskID, matched, len(chunks), script.ID)
	p.DB.Model(script).Update("status", "complete")
	log.Printf("[%s] Script %d processing complete", task.TaskID, script.ID)
	return nil
}
