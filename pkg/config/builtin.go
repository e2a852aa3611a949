package config

import "github.com/AlwaysBluer/lindorm-memobase/pkg/models"

// BuiltinProfileTopics returns the built-in extraction taxonomy for the given
// language. Topic and sub-topic names are stable identifiers shared across
// languages because they form the storage slot keys; only the descriptions
// fed to prompts are localized.
func BuiltinProfileTopics(language string) []models.UserProfileTopic {
	switch language {
	case "zh":
		return builtinTopicsZH
	default:
		return builtinTopicsEN
	}
}

var builtinTopicsEN = []models.UserProfileTopic{
	{
		Topic:       "basic_info",
		Description: "Core identity attributes of the user",
		SubTopics: []models.SubTopic{
			{Name: "name", Description: "The user's preferred name or nickname"},
			{Name: "age"},
			{Name: "gender"},
			{Name: "birth_date", Description: "Stated birthday or birth year"},
			{Name: "nationality"},
			{Name: "language_spoken", Description: "Languages the user reads or speaks"},
		},
	},
	{
		Topic:       "contact_info",
		Description: "How and where the user can be reached",
		SubTopics: []models.SubTopic{
			{Name: "email"},
			{Name: "phone"},
			{Name: "city", Description: "Current city of residence"},
			{Name: "country"},
		},
	},
	{
		Topic:       "education",
		Description: "Schooling and academic background",
		SubTopics: []models.SubTopic{
			{Name: "school"},
			{Name: "degree"},
			{Name: "major", Description: "Field of study"},
			{Name: "graduation_year"},
		},
	},
	{
		Topic:       "demographics",
		Description: "Household and family facts",
		SubTopics: []models.SubTopic{
			{Name: "marital_status"},
			{Name: "number_of_children"},
			{Name: "household_income"},
		},
	},
	{
		Topic:       "work",
		Description: "Professional life and skills",
		SubTopics: []models.SubTopic{
			{Name: "company"},
			{Name: "title", Description: "Current job title or role"},
			{Name: "working_industry"},
			{Name: "previous_projects"},
			{Name: "work_skills", UpdateDescription: "Merge new skills into the existing list"},
		},
	},
	{
		Topic:       "interest",
		Description: "Hobbies and preferences the user volunteers",
		SubTopics: []models.SubTopic{
			{Name: "books", Description: "Favorite books, genres, or authors"},
			{Name: "movies"},
			{Name: "music", Description: "Genres, artists, or instruments played"},
			{Name: "foods"},
			{Name: "sports"},
			{Name: "games"},
		},
	},
	{
		Topic:       "lifestyle",
		Description: "Daily habits and routines",
		SubTopics: []models.SubTopic{
			{Name: "dietary_preference", Description: "Vegetarian, allergies, favorite cuisine"},
			{Name: "exercise_habit"},
			{Name: "sleeping_habit"},
			{Name: "pets"},
		},
	},
	{
		Topic:       "psychological",
		Description: "Personality and motivations",
		SubTopics: []models.SubTopic{
			{Name: "personality"},
			{Name: "values"},
			{Name: "goals", UpdateDescription: "Keep past goals that are still active; drop achieved ones"},
		},
	},
	{
		Topic:       "life_event",
		Description: "Notable one-off events worth remembering",
		SubTopics: []models.SubTopic{
			{Name: "marriage"},
			{Name: "relocation"},
			{Name: "retirement"},
			{Name: "health", Description: "Injuries, conditions, recoveries the user mentions"},
		},
	},
}

var builtinTopicsZH = []models.UserProfileTopic{
	{
		Topic:       "basic_info",
		Description: "用户的核心身份信息",
		SubTopics: []models.SubTopic{
			{Name: "name", Description: "用户的称呼或昵称"},
			{Name: "age"},
			{Name: "gender"},
			{Name: "birth_date", Description: "用户提到的生日或出生年份"},
			{Name: "nationality"},
			{Name: "language_spoken", Description: "用户会说或会读的语言"},
		},
	},
	{
		Topic:       "contact_info",
		Description: "用户的联系方式与所在地",
		SubTopics: []models.SubTopic{
			{Name: "email"},
			{Name: "phone"},
			{Name: "city", Description: "当前居住城市"},
			{Name: "country"},
		},
	},
	{
		Topic:       "education",
		Description: "教育经历与学术背景",
		SubTopics: []models.SubTopic{
			{Name: "school"},
			{Name: "degree"},
			{Name: "major", Description: "所学专业"},
			{Name: "graduation_year"},
		},
	},
	{
		Topic:       "demographics",
		Description: "家庭与人口学信息",
		SubTopics: []models.SubTopic{
			{Name: "marital_status"},
			{Name: "number_of_children"},
			{Name: "household_income"},
		},
	},
	{
		Topic:       "work",
		Description: "职业与技能",
		SubTopics: []models.SubTopic{
			{Name: "company"},
			{Name: "title", Description: "当前职位"},
			{Name: "working_industry"},
			{Name: "previous_projects"},
			{Name: "work_skills", UpdateDescription: "将新技能合并进已有列表"},
		},
	},
	{
		Topic:       "interest",
		Description: "用户主动提到的兴趣与偏好",
		SubTopics: []models.SubTopic{
			{Name: "books", Description: "喜欢的书籍、类型或作者"},
			{Name: "movies"},
			{Name: "music", Description: "喜欢的曲风、歌手或演奏的乐器"},
			{Name: "foods"},
			{Name: "sports"},
			{Name: "games"},
		},
	},
	{
		Topic:       "lifestyle",
		Description: "日常习惯与作息",
		SubTopics: []models.SubTopic{
			{Name: "dietary_preference", Description: "饮食偏好、忌口或过敏"},
			{Name: "exercise_habit"},
			{Name: "sleeping_habit"},
			{Name: "pets"},
		},
	},
	{
		Topic:       "psychological",
		Description: "性格与动机",
		SubTopics: []models.SubTopic{
			{Name: "personality"},
			{Name: "values"},
			{Name: "goals", UpdateDescription: "保留仍在进行的目标，去掉已完成的"},
		},
	},
	{
		Topic:       "life_event",
		Description: "值得记住的重要事件",
		SubTopics: []models.SubTopic{
			{Name: "marriage"},
			{Name: "relocation"},
			{Name: "retirement"},
			{Name: "health", Description: "用户提到的伤病或康复情况"},
		},
	},
}
