package routine

import "github.com/natjohn/wellbee/internal/models"

// goalConfig holds the per-goal routine skeleton parameters.
type goalConfig struct {
	WakeUpTime   string
	BedTime      string
	WaterIntake  int // glasses, baseline before activity adjustment
	MorningDrink string
	WorkoutFocus string
}

var routinesByGoal = map[models.Goal]goalConfig{
	models.GoalGainWeight: {
		WakeUpTime:   "07:00",
		BedTime:      "22:30",
		WaterIntake:  10,
		MorningDrink: "Banana shake with honey and almonds",
		WorkoutFocus: "Strength training",
	},
	models.GoalLowEnergy: {
		WakeUpTime:   "06:00",
		BedTime:      "22:00",
		WaterIntake:  12,
		MorningDrink: "Warm lemon water with ginger",
		WorkoutFocus: "Light cardio & stretching",
	},
	models.GoalMotivation: {
		WakeUpTime:   "05:30",
		BedTime:      "22:00",
		WaterIntake:  10,
		MorningDrink: "Green tea with honey",
		WorkoutFocus: "High-intensity interval training",
	},
	models.GoalLoseWeight: {
		WakeUpTime:   "06:00",
		BedTime:      "22:00",
		WaterIntake:  12,
		MorningDrink: "Warm water with lemon and honey",
		WorkoutFocus: "Cardio & fat burning",
	},
	models.GoalMaintain: {
		WakeUpTime:   "06:30",
		BedTime:      "22:30",
		WaterIntake:  8,
		MorningDrink: "Warm water with lemon",
		WorkoutFocus: "Balanced workout",
	},
	models.GoalLifestyle: {
		WakeUpTime:   "06:00",
		BedTime:      "22:00",
		WaterIntake:  10,
		MorningDrink: "Herbal tea or warm water",
		WorkoutFocus: "Yoga & mindful movement",
	},
}

var mealPlansByGoal = map[models.Goal]models.MealPlan{
	models.GoalGainWeight: {
		Breakfast: models.Meal{
			Time:     "08:00",
			Name:     "Power Breakfast",
			Items:    []string{"4 egg omelette with cheese", "Whole grain toast with peanut butter", "Banana smoothie", "Handful of almonds"},
			Calories: 800,
			Alternatives: []models.MealAlternative{
				{Name: "Loaded Oats Bowl", Items: []string{"Oats cooked in whole milk", "Peanut butter", "Banana", "Chopped dates"}, Calories: 750},
				{Name: "Paneer Paratha Plate", Items: []string{"2 paneer parathas with ghee", "Curd", "Mango lassi"}, Calories: 820},
			},
		},
		MorningSnack: models.Meal{
			Time:         "10:30",
			Name:         "Calorie Boost",
			Items:        []string{"Greek yogurt with granola", "Mixed nuts", "Dried fruits"},
			Calories:     350,
			Alternatives: []models.MealAlternative{},
		},
		Lunch: models.Meal{
			Time:     "13:00",
			Name:     "Hearty Lunch",
			Items:    []string{"Brown rice with dal", "Grilled chicken/paneer", "Mixed vegetables", "Curd", "Chapati"},
			Calories: 900,
			Alternatives: []models.MealAlternative{
				{Name: "Chicken Biryani Bowl", Items: []string{"Chicken biryani", "Raita", "Boiled egg"}, Calories: 880},
			},
		},
		EveningSnack: models.Meal{
			Time:         "16:30",
			Name:         "Protein Snack",
			Items:        []string{"Protein shake", "Peanut butter sandwich", "Banana"},
			Calories:     400,
			Alternatives: []models.MealAlternative{},
		},
		Dinner: models.Meal{
			Time:     "20:00",
			Name:     "Muscle Recovery",
			Items:    []string{"Whole wheat roti", "Egg curry/Paneer", "Brown rice", "Mixed salad", "Milk before bed"},
			Calories: 750,
			Alternatives: []models.MealAlternative{
				{Name: "Pasta & Meatballs", Items: []string{"Whole wheat pasta", "Chicken meatballs", "Tomato sauce", "Glass of milk"}, Calories: 780},
			},
		},
	},
	models.GoalLowEnergy: {
		Breakfast: models.Meal{
			Time:     "07:00",
			Name:     "Energy Boost Breakfast",
			Items:    []string{"Oatmeal with berries", "Boiled eggs", "Fresh orange juice", "Green tea"},
			Calories: 500,
			Alternatives: []models.MealAlternative{
				{Name: "Smoothie Bowl", Items: []string{"Banana-spinach smoothie bowl", "Granola", "Chia seeds"}, Calories: 450},
			},
		},
		MorningSnack: models.Meal{
			Time:         "10:00",
			Name:         "Vitality Snack",
			Items:        []string{"Apple slices with almond butter", "Green smoothie"},
			Calories:     250,
			Alternatives: []models.MealAlternative{},
		},
		Lunch: models.Meal{
			Time:     "12:30",
			Name:     "Balanced Lunch",
			Items:    []string{"Quinoa salad", "Grilled fish/tofu", "Steamed vegetables", "Lemon water"},
			Calories: 600,
			Alternatives: []models.MealAlternative{
				{Name: "Mediterranean Plate", Items: []string{"Hummus", "Falafel", "Whole wheat pita", "Cucumber salad"}, Calories: 580},
			},
		},
		EveningSnack: models.Meal{
			Time:         "16:00",
			Name:         "Afternoon Pick-me-up",
			Items:        []string{"Trail mix", "Coconut water", "Dark chocolate (2 squares)"},
			Calories:     200,
			Alternatives: []models.MealAlternative{},
		},
		Dinner: models.Meal{
			Time:     "19:30",
			Name:     "Light Dinner",
			Items:    []string{"Vegetable soup", "Grilled chicken/paneer", "Multigrain bread", "Herbal tea"},
			Calories: 500,
			Alternatives: []models.MealAlternative{
				{Name: "Khichdi Bowl", Items: []string{"Moong dal khichdi", "Curd", "Papad"}, Calories: 480},
			},
		},
	},
	models.GoalMotivation: {
		Breakfast: models.Meal{
			Time:     "06:30",
			Name:     "Warrior Breakfast",
			Items:    []string{"Protein pancakes", "Scrambled eggs", "Fresh fruits", "Black coffee"},
			Calories: 550,
			Alternatives: []models.MealAlternative{
				{Name: "Egg White Wrap", Items: []string{"Egg white wrap with veggies", "Avocado", "Black coffee"}, Calories: 500},
			},
		},
		MorningSnack: models.Meal{
			Time:         "09:30",
			Name:         "Focus Fuel",
			Items:        []string{"Mixed nuts", "Protein bar", "Green tea"},
			Calories:     300,
			Alternatives: []models.MealAlternative{},
		},
		Lunch: models.Meal{
			Time:     "12:00",
			Name:     "Power Lunch",
			Items:    []string{"Grilled chicken breast", "Brown rice", "Broccoli & spinach", "Buttermilk"},
			Calories: 650,
			Alternatives: []models.MealAlternative{
				{Name: "Tofu Stir-fry", Items: []string{"Tofu stir-fry", "Brown rice", "Mixed peppers", "Buttermilk"}, Calories: 620},
			},
		},
		EveningSnack: models.Meal{
			Time:         "15:30",
			Name:         "Pre-workout Snack",
			Items:        []string{"Banana", "Peanut butter", "Coffee"},
			Calories:     250,
			Alternatives: []models.MealAlternative{},
		},
		Dinner: models.Meal{
			Time:     "19:00",
			Name:     "Recovery Dinner",
			Items:    []string{"Salmon/Lentils", "Sweet potato", "Mixed greens", "Chamomile tea"},
			Calories: 550,
			Alternatives: []models.MealAlternative{
				{Name: "Grilled Chicken Salad", Items: []string{"Grilled chicken", "Quinoa", "Leafy greens", "Olive oil dressing"}, Calories: 530},
			},
		},
	},
	models.GoalLoseWeight: {
		Breakfast: models.Meal{
			Time:     "07:00",
			Name:     "Lean Start",
			Items:    []string{"Vegetable oats upma", "2 boiled egg whites", "Green tea"},
			Calories: 350,
			Alternatives: []models.MealAlternative{
				{Name: "Poha Plate", Items: []string{"Vegetable poha", "Sprouts", "Lemon water"}, Calories: 320},
			},
		},
		MorningSnack: models.Meal{
			Time:         "10:00",
			Name:         "Light Bite",
			Items:        []string{"Cucumber and carrot sticks", "Buttermilk"},
			Calories:     100,
			Alternatives: []models.MealAlternative{},
		},
		Lunch: models.Meal{
			Time:     "13:00",
			Name:     "Portion-controlled Lunch",
			Items:    []string{"1 chapati", "Dal", "Large salad", "Grilled vegetables", "Curd"},
			Calories: 450,
			Alternatives: []models.MealAlternative{
				{Name: "Soup & Salad", Items: []string{"Clear vegetable soup", "Grilled chicken salad", "1 multigrain toast"}, Calories: 420},
			},
		},
		EveningSnack: models.Meal{
			Time:         "16:30",
			Name:         "Crunch Break",
			Items:        []string{"Roasted chana", "Green tea"},
			Calories:     120,
			Alternatives: []models.MealAlternative{},
		},
		Dinner: models.Meal{
			Time:     "19:30",
			Name:     "Light & Early Dinner",
			Items:    []string{"Grilled paneer/fish", "Sautéed vegetables", "Clear soup"},
			Calories: 400,
			Alternatives: []models.MealAlternative{
				{Name: "Veggie Stir-fry", Items: []string{"Mixed vegetable stir-fry", "Small bowl of brown rice", "Herbal tea"}, Calories: 380},
			},
		},
	},
	models.GoalMaintain: {
		Breakfast: models.Meal{
			Time:     "07:30",
			Name:     "Balanced Breakfast",
			Items:    []string{"Whole grain cereal with milk", "2 eggs any style", "Fresh fruit", "Coffee/tea"},
			Calories: 450,
			Alternatives: []models.MealAlternative{
				{Name: "Idli Sambar", Items: []string{"3 idlis", "Sambar", "Coconut chutney", "Filter coffee"}, Calories: 430},
			},
		},
		MorningSnack: models.Meal{
			Time:         "10:30",
			Name:         "Light Snack",
			Items:        []string{"Yogurt", "Apple", "Few almonds"},
			Calories:     200,
			Alternatives: []models.MealAlternative{},
		},
		Lunch: models.Meal{
			Time:     "13:00",
			Name:     "Wholesome Lunch",
			Items:    []string{"Dal with rice", "Roti", "Mixed vegetables", "Raita", "Salad"},
			Calories: 600,
			Alternatives: []models.MealAlternative{
				{Name: "Rajma Chawal", Items: []string{"Rajma", "Steamed rice", "Onion salad", "Curd"}, Calories: 620},
			},
		},
		EveningSnack: models.Meal{
			Time:         "16:30",
			Name:         "Evening Refresher",
			Items:        []string{"Sprouts chaat", "Green tea", "Roasted chana"},
			Calories:     180,
			Alternatives: []models.MealAlternative{},
		},
		Dinner: models.Meal{
			Time:     "20:00",
			Name:     "Light Dinner",
			Items:    []string{"Chapati", "Vegetable curry", "Curd", "Fruit"},
			Calories: 450,
			Alternatives: []models.MealAlternative{
				{Name: "Veg Pulao", Items: []string{"Vegetable pulao", "Raita", "Salad"}, Calories: 470},
			},
		},
	},
	models.GoalLifestyle: {
		Breakfast: models.Meal{
			Time:     "07:00",
			Name:     "Mindful Morning",
			Items:    []string{"Overnight oats with chia seeds", "Fresh berries", "Herbal tea", "Handful of walnuts"},
			Calories: 400,
			Alternatives: []models.MealAlternative{
				{Name: "Avocado Toast", Items: []string{"Sourdough avocado toast", "Poached egg", "Herbal tea"}, Calories: 420},
			},
		},
		MorningSnack: models.Meal{
			Time:         "10:00",
			Name:         "Nourishing Snack",
			Items:        []string{"Fresh fruit bowl", "Coconut water"},
			Calories:     150,
			Alternatives: []models.MealAlternative{},
		},
		Lunch: models.Meal{
			Time:     "12:30",
			Name:     "Buddha Bowl",
			Items:    []string{"Quinoa", "Roasted vegetables", "Hummus", "Leafy greens", "Tahini dressing"},
			Calories: 550,
			Alternatives: []models.MealAlternative{
				{Name: "Grain-free Bowl", Items: []string{"Cauliflower rice", "Grilled tofu", "Avocado", "Seed mix"}, Calories: 520},
			},
		},
		EveningSnack: models.Meal{
			Time:         "16:00",
			Name:         "Zen Snack",
			Items:        []string{"Dates with almond butter", "Green smoothie"},
			Calories:     200,
			Alternatives: []models.MealAlternative{},
		},
		Dinner: models.Meal{
			Time:     "19:00",
			Name:     "Healing Dinner",
			Items:    []string{"Miso soup", "Steamed vegetables", "Tofu/Fish", "Brown rice", "Golden milk before bed"},
			Calories: 450,
			Alternatives: []models.MealAlternative{
				{Name: "Veggie Curry Night", Items: []string{"Coconut vegetable curry", "Brown rice", "Steamed greens", "Chamomile tea"}, Calories: 460},
			},
		},
	},
}

var workoutsByGoal = map[models.Goal]models.WorkoutPlan{
	models.GoalGainWeight: {
		Time:     "18:00",
		Name:     "Strength Training",
		Duration: 60,
		Exercises: []models.Exercise{
			{Name: "Compound lifts (squats, deadlifts)", Sets: 4, Reps: 8},
			{Name: "Bench press", Sets: 4, Reps: 10},
			{Name: "Rows", Sets: 3, Reps: 12},
			{Name: "Shoulder press", Sets: 3, Reps: 10},
			{Name: "Core work", Duration: 10},
		},
	},
	models.GoalLowEnergy: {
		Time:     "07:00",
		Name:     "Energizing Movement",
		Duration: 30,
		Exercises: []models.Exercise{
			{Name: "Light stretching", Duration: 5},
			{Name: "Brisk walking", Duration: 15},
			{Name: "Yoga sun salutations", Sets: 5},
			{Name: "Deep breathing", Duration: 5},
		},
	},
	models.GoalMotivation: {
		Time:     "06:00",
		Name:     "HIIT Challenge",
		Duration: 45,
		Exercises: []models.Exercise{
			{Name: "Burpees", Sets: 4, Reps: 15},
			{Name: "Mountain climbers", Sets: 4, Reps: 30},
			{Name: "Jump squats", Sets: 4, Reps: 20},
			{Name: "Push-ups", Sets: 4, Reps: 15},
			{Name: "Plank", Duration: 3},
		},
	},
	models.GoalLoseWeight: {
		Time:     "06:30",
		Name:     "Fat Burn Circuit",
		Duration: 45,
		Exercises: []models.Exercise{
			{Name: "Jump rope", Duration: 10},
			{Name: "Bodyweight circuit", Sets: 3, Reps: 15},
			{Name: "Incline walking", Duration: 15},
			{Name: "Core finisher", Duration: 5},
		},
	},
	models.GoalMaintain: {
		Time:     "06:30",
		Name:     "Balanced Workout",
		Duration: 45,
		Exercises: []models.Exercise{
			{Name: "Cardio warm-up", Duration: 10},
			{Name: "Full body circuit", Sets: 3, Reps: 12},
			{Name: "Core exercises", Duration: 10},
			{Name: "Stretching", Duration: 5},
		},
	},
	models.GoalLifestyle: {
		Time:     "06:30",
		Name:     "Mindful Yoga",
		Duration: 45,
		Exercises: []models.Exercise{
			{Name: "Pranayama breathing", Duration: 5},
			{Name: "Surya Namaskar", Sets: 10},
			{Name: "Standing poses", Duration: 15},
			{Name: "Floor poses", Duration: 10},
			{Name: "Savasana meditation", Duration: 10},
		},
	},
}
