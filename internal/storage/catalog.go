// ABOUTME: Built-in exercise catalog loaded by the seeder.
// ABOUTME: Names are unique within the catalog; customs may reuse them.
package storage

import "github.com/harperreed/fitlog/internal/models"

type catalogEntry struct {
	name      string
	group     models.MuscleGroup
	equipment models.EquipmentType
}

var exerciseCatalog = []catalogEntry{
	// Chest
	{"Barbell Bench Press", models.MuscleChest, models.EquipmentBarbell},
	{"Incline Barbell Bench Press", models.MuscleChest, models.EquipmentBarbell},
	{"Decline Barbell Bench Press", models.MuscleChest, models.EquipmentBarbell},
	{"Close-Grip Bench Press", models.MuscleChest, models.EquipmentBarbell},
	{"Floor Press", models.MuscleChest, models.EquipmentBarbell},
	{"Dumbbell Bench Press", models.MuscleChest, models.EquipmentDumbbell},
	{"Incline Dumbbell Press", models.MuscleChest, models.EquipmentDumbbell},
	{"Decline Dumbbell Press", models.MuscleChest, models.EquipmentDumbbell},
	{"Dumbbell Fly", models.MuscleChest, models.EquipmentDumbbell},
	{"Incline Dumbbell Fly", models.MuscleChest, models.EquipmentDumbbell},
	{"Dumbbell Pullover", models.MuscleChest, models.EquipmentDumbbell},
	{"Chest Press Machine", models.MuscleChest, models.EquipmentMachine},
	{"Incline Chest Press Machine", models.MuscleChest, models.EquipmentMachine},
	{"Pec Deck", models.MuscleChest, models.EquipmentMachine},
	{"Smith Machine Bench Press", models.MuscleChest, models.EquipmentMachine},
	{"Cable Crossover", models.MuscleChest, models.EquipmentCable},
	{"Low Cable Fly", models.MuscleChest, models.EquipmentCable},
	{"High Cable Fly", models.MuscleChest, models.EquipmentCable},
	{"Single-Arm Cable Press", models.MuscleChest, models.EquipmentCable},
	{"Push-Up", models.MuscleChest, models.EquipmentBodyweight},
	{"Incline Push-Up", models.MuscleChest, models.EquipmentBodyweight},
	{"Decline Push-Up", models.MuscleChest, models.EquipmentBodyweight},
	{"Chest Dip", models.MuscleChest, models.EquipmentBodyweight},
	{"Kettlebell Floor Press", models.MuscleChest, models.EquipmentKettlebell},
	{"Landmine Press", models.MuscleChest, models.EquipmentOther},
	// Back
	{"Deadlift", models.MuscleBack, models.EquipmentBarbell},
	{"Barbell Row", models.MuscleBack, models.EquipmentBarbell},
	{"Pendlay Row", models.MuscleBack, models.EquipmentBarbell},
	{"Rack Pull", models.MuscleBack, models.EquipmentBarbell},
	{"T-Bar Row", models.MuscleBack, models.EquipmentBarbell},
	{"Dumbbell Row", models.MuscleBack, models.EquipmentDumbbell},
	{"Chest-Supported Dumbbell Row", models.MuscleBack, models.EquipmentDumbbell},
	{"Dumbbell Shrug", models.MuscleBack, models.EquipmentDumbbell},
	{"Renegade Row", models.MuscleBack, models.EquipmentDumbbell},
	{"Lat Pulldown", models.MuscleBack, models.EquipmentCable},
	{"Close-Grip Lat Pulldown", models.MuscleBack, models.EquipmentCable},
	{"Seated Cable Row", models.MuscleBack, models.EquipmentCable},
	{"Straight-Arm Pulldown", models.MuscleBack, models.EquipmentCable},
	{"Cable Face Pull", models.MuscleBack, models.EquipmentCable},
	{"Machine Row", models.MuscleBack, models.EquipmentMachine},
	{"Assisted Pull-Up Machine", models.MuscleBack, models.EquipmentMachine},
	{"Back Extension", models.MuscleBack, models.EquipmentMachine},
	{"Pull-Up", models.MuscleBack, models.EquipmentBodyweight},
	{"Chin-Up", models.MuscleBack, models.EquipmentBodyweight},
	{"Inverted Row", models.MuscleBack, models.EquipmentBodyweight},
	{"Superman Hold", models.MuscleBack, models.EquipmentBodyweight},
	{"Kettlebell Swing", models.MuscleBack, models.EquipmentKettlebell},
	{"Kettlebell Row", models.MuscleBack, models.EquipmentKettlebell},
	{"Barbell Shrug", models.MuscleBack, models.EquipmentBarbell},
	{"Good Morning", models.MuscleBack, models.EquipmentBarbell},
	// Legs
	{"Barbell Back Squat", models.MuscleLegs, models.EquipmentBarbell},
	{"Front Squat", models.MuscleLegs, models.EquipmentBarbell},
	{"Romanian Deadlift", models.MuscleLegs, models.EquipmentBarbell},
	{"Sumo Deadlift", models.MuscleLegs, models.EquipmentBarbell},
	{"Barbell Hip Thrust", models.MuscleLegs, models.EquipmentBarbell},
	{"Barbell Lunge", models.MuscleLegs, models.EquipmentBarbell},
	{"Dumbbell Lunge", models.MuscleLegs, models.EquipmentDumbbell},
	{"Bulgarian Split Squat", models.MuscleLegs, models.EquipmentDumbbell},
	{"Goblet Squat", models.MuscleLegs, models.EquipmentDumbbell},
	{"Dumbbell Step-Up", models.MuscleLegs, models.EquipmentDumbbell},
	{"Dumbbell Romanian Deadlift", models.MuscleLegs, models.EquipmentDumbbell},
	{"Leg Press", models.MuscleLegs, models.EquipmentMachine},
	{"Hack Squat", models.MuscleLegs, models.EquipmentMachine},
	{"Leg Extension", models.MuscleLegs, models.EquipmentMachine},
	{"Lying Leg Curl", models.MuscleLegs, models.EquipmentMachine},
	{"Seated Leg Curl", models.MuscleLegs, models.EquipmentMachine},
	{"Standing Calf Raise", models.MuscleLegs, models.EquipmentMachine},
	{"Seated Calf Raise", models.MuscleLegs, models.EquipmentMachine},
	{"Hip Abduction Machine", models.MuscleLegs, models.EquipmentMachine},
	{"Hip Adduction Machine", models.MuscleLegs, models.EquipmentMachine},
	{"Cable Pull-Through", models.MuscleLegs, models.EquipmentCable},
	{"Cable Kickback", models.MuscleLegs, models.EquipmentCable},
	{"Bodyweight Squat", models.MuscleLegs, models.EquipmentBodyweight},
	{"Walking Lunge", models.MuscleLegs, models.EquipmentBodyweight},
	{"Kettlebell Goblet Squat", models.MuscleLegs, models.EquipmentKettlebell},
	// Shoulders
	{"Overhead Press", models.MuscleShoulders, models.EquipmentBarbell},
	{"Push Press", models.MuscleShoulders, models.EquipmentBarbell},
	{"Behind-the-Neck Press", models.MuscleShoulders, models.EquipmentBarbell},
	{"Barbell Upright Row", models.MuscleShoulders, models.EquipmentBarbell},
	{"Dumbbell Shoulder Press", models.MuscleShoulders, models.EquipmentDumbbell},
	{"Arnold Press", models.MuscleShoulders, models.EquipmentDumbbell},
	{"Lateral Raise", models.MuscleShoulders, models.EquipmentDumbbell},
	{"Front Raise", models.MuscleShoulders, models.EquipmentDumbbell},
	{"Rear Delt Fly", models.MuscleShoulders, models.EquipmentDumbbell},
	{"Dumbbell Upright Row", models.MuscleShoulders, models.EquipmentDumbbell},
	{"Seated Dumbbell Press", models.MuscleShoulders, models.EquipmentDumbbell},
	{"Shoulder Press Machine", models.MuscleShoulders, models.EquipmentMachine},
	{"Reverse Pec Deck", models.MuscleShoulders, models.EquipmentMachine},
	{"Lateral Raise Machine", models.MuscleShoulders, models.EquipmentMachine},
	{"Smith Machine Shoulder Press", models.MuscleShoulders, models.EquipmentMachine},
	{"Cable Lateral Raise", models.MuscleShoulders, models.EquipmentCable},
	{"Cable Front Raise", models.MuscleShoulders, models.EquipmentCable},
	{"Cable Rear Delt Fly", models.MuscleShoulders, models.EquipmentCable},
	{"Cable Upright Row", models.MuscleShoulders, models.EquipmentCable},
	{"Pike Push-Up", models.MuscleShoulders, models.EquipmentBodyweight},
	{"Handstand Push-Up", models.MuscleShoulders, models.EquipmentBodyweight},
	{"Kettlebell Press", models.MuscleShoulders, models.EquipmentKettlebell},
	{"Kettlebell Halo", models.MuscleShoulders, models.EquipmentKettlebell},
	{"Turkish Get-Up", models.MuscleShoulders, models.EquipmentKettlebell},
	{"Plate Front Raise", models.MuscleShoulders, models.EquipmentOther},
	// Arms
	{"Barbell Curl", models.MuscleArms, models.EquipmentBarbell},
	{"EZ-Bar Curl", models.MuscleArms, models.EquipmentBarbell},
	{"Preacher Curl", models.MuscleArms, models.EquipmentBarbell},
	{"Skull Crusher", models.MuscleArms, models.EquipmentBarbell},
	{"Reverse Barbell Curl", models.MuscleArms, models.EquipmentBarbell},
	{"Dumbbell Curl", models.MuscleArms, models.EquipmentDumbbell},
	{"Hammer Curl", models.MuscleArms, models.EquipmentDumbbell},
	{"Incline Dumbbell Curl", models.MuscleArms, models.EquipmentDumbbell},
	{"Concentration Curl", models.MuscleArms, models.EquipmentDumbbell},
	{"Overhead Dumbbell Extension", models.MuscleArms, models.EquipmentDumbbell},
	{"Dumbbell Kickback", models.MuscleArms, models.EquipmentDumbbell},
	{"Wrist Curl", models.MuscleArms, models.EquipmentDumbbell},
	{"Cable Curl", models.MuscleArms, models.EquipmentCable},
	{"Rope Hammer Curl", models.MuscleArms, models.EquipmentCable},
	{"Tricep Pushdown", models.MuscleArms, models.EquipmentCable},
	{"Rope Pushdown", models.MuscleArms, models.EquipmentCable},
	{"Overhead Cable Extension", models.MuscleArms, models.EquipmentCable},
	{"Bicep Curl Machine", models.MuscleArms, models.EquipmentMachine},
	{"Tricep Extension Machine", models.MuscleArms, models.EquipmentMachine},
	{"Assisted Dip Machine", models.MuscleArms, models.EquipmentMachine},
	{"Tricep Dip", models.MuscleArms, models.EquipmentBodyweight},
	{"Diamond Push-Up", models.MuscleArms, models.EquipmentBodyweight},
	{"Bench Dip", models.MuscleArms, models.EquipmentBodyweight},
	{"Kettlebell Curl", models.MuscleArms, models.EquipmentKettlebell},
	{"Resistance Band Curl", models.MuscleArms, models.EquipmentOther},
	// Core
	{"Plank", models.MuscleCore, models.EquipmentBodyweight},
	{"Side Plank", models.MuscleCore, models.EquipmentBodyweight},
	{"Crunch", models.MuscleCore, models.EquipmentBodyweight},
	{"Bicycle Crunch", models.MuscleCore, models.EquipmentBodyweight},
	{"Hanging Leg Raise", models.MuscleCore, models.EquipmentBodyweight},
	{"Lying Leg Raise", models.MuscleCore, models.EquipmentBodyweight},
	{"Mountain Climber", models.MuscleCore, models.EquipmentBodyweight},
	{"Dead Bug", models.MuscleCore, models.EquipmentBodyweight},
	{"Hollow Body Hold", models.MuscleCore, models.EquipmentBodyweight},
	{"V-Up", models.MuscleCore, models.EquipmentBodyweight},
	{"Sit-Up", models.MuscleCore, models.EquipmentBodyweight},
	{"Russian Twist", models.MuscleCore, models.EquipmentOther},
	{"Ab Wheel Rollout", models.MuscleCore, models.EquipmentOther},
	{"Cable Crunch", models.MuscleCore, models.EquipmentCable},
	{"Cable Woodchopper", models.MuscleCore, models.EquipmentCable},
	{"Pallof Press", models.MuscleCore, models.EquipmentCable},
	{"Ab Crunch Machine", models.MuscleCore, models.EquipmentMachine},
	{"Rotary Torso Machine", models.MuscleCore, models.EquipmentMachine},
	{"Captain's Chair Leg Raise", models.MuscleCore, models.EquipmentMachine},
	{"Weighted Decline Sit-Up", models.MuscleCore, models.EquipmentDumbbell},
	{"Dumbbell Side Bend", models.MuscleCore, models.EquipmentDumbbell},
	{"Kettlebell Windmill", models.MuscleCore, models.EquipmentKettlebell},
	{"Kettlebell Russian Twist", models.MuscleCore, models.EquipmentKettlebell},
	{"Barbell Rollout", models.MuscleCore, models.EquipmentBarbell},
	{"Landmine Rotation", models.MuscleCore, models.EquipmentBarbell},
}
